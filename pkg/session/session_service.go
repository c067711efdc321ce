package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"HomeStock-Backend/domain"
	"HomeStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionLifetime matches the multi-month expiry window of the original
// cookie store.
const SessionLifetime = 6 * 30 * 24 * time.Hour

const tokenLength = 32 // 256 bits

type (
	SessionService interface {
		Create(ctx context.Context, userID uuid.UUID) (*entities.Session, error)
		Resolve(ctx context.Context, token string) (uuid.UUID, error)
		Destroy(ctx context.Context, token string) error
	}

	sessionService struct {
		sessionRepository SessionRepository
	}
)

func NewSessionService(sessionRepository SessionRepository) SessionService {
	return &sessionService{sessionRepository: sessionRepository}
}

func generateToken() (string, error) {
	bytes := make([]byte, tokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// Create mints an opaque token bound to the user and persists it, so sessions
// survive server restarts.
func (s *sessionService) Create(ctx context.Context, userID uuid.UUID) (*entities.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session := &entities.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionLifetime),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve maps a presented token to its user id. Expired sessions are removed
// on sight and reported the same way as unknown ones.
func (s *sessionService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, domain.ErrSessionNotFound
	}

	session, err := s.sessionRepository.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrSessionNotFound
		}
		return uuid.Nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessionRepository.DeleteSession(ctx, token)
		return uuid.Nil, domain.ErrSessionExpired
	}

	return session.UserID, nil
}

// Destroy removes the session. Destroying an already-destroyed token is not an
// error.
func (s *sessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepository.DeleteSession(ctx, token)
}
