package stock

import (
	"fmt"
	"math"
	"time"
)

// ExpiringThresholdDays is the inclusive calendar-day window before expiry in
// which an item counts as expiring soon. Already-expired items stay inside the
// window: the threshold is a literal upper bound, not a 0..10 range.
const ExpiringThresholdDays = 10

const (
	AlertOut      = "out"
	AlertLow      = "low"
	AlertExpiring = "expiring"
)

// Status is the derived display state of a single item. Out suppresses Low;
// Expiring is evaluated independently and can combine with either branch.
type Status struct {
	Out      bool `json:"out"`
	Low      bool `json:"low"`
	Expiring bool `json:"expiring"`

	// DaysUntilExpiry is the rounded-up day count to the expiry date, only
	// meaningful when Expiring is set. Negative once the date has passed.
	DaysUntilExpiry int `json:"days_until_expiry,omitempty"`
}

// Derive classifies a stored quantity (in base units) and optional expiry date
// against the reference time now.
func Derive(quantity float64, unit string, expiry *time.Time, now time.Time) Status {
	var s Status
	if quantity == 0 {
		s.Out = true
	} else if quantity <= OneUnitBase(unit) {
		s.Low = true
	}
	if expiry != nil {
		diff := expiry.Sub(now).Hours() / 24
		if diff <= ExpiringThresholdDays {
			s.Expiring = true
			s.DaysUntilExpiry = int(math.Ceil(diff))
		}
	}
	return s
}

// Label renders the compound display status. The expiring suffix is omitted for
// items that are out, matching the dashboard rendering.
func (s Status) Label() string {
	label := "OK"
	if s.Out {
		label = "Out"
	} else if s.Low {
		label = "Low"
	}
	if s.Expiring && !s.Out {
		suffix := "s"
		if s.DaysUntilExpiry == 1 {
			suffix = ""
		}
		label += fmt.Sprintf(" | Expiring in %d day%s", s.DaysUntilExpiry, suffix)
	}
	return label
}

// Kinds lists the alert kinds raised by this status, in severity order. An
// out-of-stock item raises only the out alert, as on the dashboard.
func (s Status) Kinds() []string {
	if s.Out {
		return []string{AlertOut}
	}
	var kinds []string
	if s.Low {
		kinds = append(kinds, AlertLow)
	}
	if s.Expiring {
		kinds = append(kinds, AlertExpiring)
	}
	return kinds
}
