package signup

import (
	"errors"
	"time"
)

// Session is the short-lived signup state carried through the verify-email
// flow. One row per pending signup, passed explicitly through the flow so
// concurrent signups can never contaminate each other.
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Email     string `gorm:"not null;index"`
	State     State  `gorm:"type:varchar(30);not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type State string

const (
	StateCreated              State = "created"
	StateAwaitingVerification State = "awaiting_verification"
	StateVerified             State = "verified"
)

var ErrBadTransition = errors.New("signup: illegal state transition")

// Advance moves the session one step forward. The flow is strictly linear:
// created -> awaiting_verification -> verified.
func (s *Session) Advance(to State) error {
	switch {
	case s.State == StateCreated && to == StateAwaitingVerification:
	case s.State == StateAwaitingVerification && to == StateVerified:
	default:
		return ErrBadTransition
	}
	s.State = to
	return nil
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// NewSession starts a signup flow for a freshly created user.
func NewSession(userID uint, email string, now time.Time) Session {
	return Session{
		UserID:    userID,
		Email:     email,
		State:     StateCreated,
		ExpiresAt: now.Add(48 * time.Hour),
	}
}
