package stock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func expiryIn(now time.Time, days int) *time.Time {
	t := now.Add(time.Duration(days) * 24 * time.Hour)
	return &t
}

func TestDerive(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		quantity float64
		unit     string
		expiry   *time.Time
		want     Status
	}{
		{
			name:     "zero quantity is out, never low",
			quantity: 0,
			unit:     UnitPiece,
			want:     Status{Out: true},
		},
		{
			name:     "one piece is low",
			quantity: 1,
			unit:     UnitPiece,
			want:     Status{Low: true},
		},
		{
			name:     "one kg worth of grams is low",
			quantity: 1000,
			unit:     UnitKilogram,
			want:     Status{Low: true},
		},
		{
			name:     "just above one kg is fine",
			quantity: 1001,
			unit:     UnitKilogram,
			want:     Status{},
		},
		{
			name:     "plenty of stock is ok",
			quantity: 12,
			unit:     UnitPiece,
			want:     Status{},
		},
		{
			name:     "exactly ten days out is expiring",
			quantity: 12,
			unit:     UnitPiece,
			expiry:   expiryIn(now, 10),
			want:     Status{Expiring: true, DaysUntilExpiry: 10},
		},
		{
			name:     "eleven days out is not expiring",
			quantity: 12,
			unit:     UnitPiece,
			expiry:   expiryIn(now, 11),
			want:     Status{},
		},
		{
			name:     "already expired still counts as expiring",
			quantity: 12,
			unit:     UnitPiece,
			expiry:   expiryIn(now, -2),
			want:     Status{Expiring: true, DaysUntilExpiry: -2},
		},
		{
			name:     "low and expiring compose",
			quantity: 1,
			unit:     UnitPiece,
			expiry:   expiryIn(now, 3),
			want:     Status{Low: true, Expiring: true, DaysUntilExpiry: 3},
		},
		{
			name:     "out with near expiry keeps the expiring flag",
			quantity: 0,
			unit:     UnitPiece,
			expiry:   expiryIn(now, 3),
			want:     Status{Out: true, Expiring: true, DaysUntilExpiry: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.quantity, tt.unit, tt.expiry, now))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"ok", Status{}, "OK"},
		{"out", Status{Out: true}, "Out"},
		{"low", Status{Low: true}, "Low"},
		{
			"low and expiring compose",
			Status{Low: true, Expiring: true, DaysUntilExpiry: 3},
			"Low | Expiring in 3 days",
		},
		{
			"singular day",
			Status{Expiring: true, DaysUntilExpiry: 1},
			"OK | Expiring in 1 day",
		},
		{
			"out suppresses the expiring suffix",
			Status{Out: true, Expiring: true, DaysUntilExpiry: 2},
			"Out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Label())
		})
	}
}

func TestStatusKinds(t *testing.T) {
	assert.Equal(t, []string{AlertOut}, Status{Out: true, Expiring: true}.Kinds())
	assert.Equal(t, []string{AlertLow, AlertExpiring}, Status{Low: true, Expiring: true}.Kinds())
	assert.Equal(t, []string{AlertExpiring}, Status{Expiring: true}.Kinds())
	assert.Empty(t, Status{}.Kinds())
}
