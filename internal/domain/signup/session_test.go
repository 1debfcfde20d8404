package signup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Session_LinearFlow(t *testing.T) {
	now := time.Now()
	s := NewSession(7, "reader@example.com", now)
	assert.Equal(t, StateCreated, s.State)
	assert.False(t, s.Expired(now))

	assert.NoError(t, s.Advance(StateAwaitingVerification))
	assert.Equal(t, StateAwaitingVerification, s.State)

	assert.NoError(t, s.Advance(StateVerified))
	assert.Equal(t, StateVerified, s.State)
}

func Test_Session_RejectsIllegalTransitions(t *testing.T) {
	now := time.Now()

	s := NewSession(1, "a@example.com", now)
	// cannot skip straight to verified
	assert.ErrorIs(t, s.Advance(StateVerified), ErrBadTransition)
	assert.Equal(t, StateCreated, s.State)

	// cannot go backwards
	_ = s.Advance(StateAwaitingVerification)
	assert.ErrorIs(t, s.Advance(StateCreated), ErrBadTransition)

	// verified is terminal
	_ = s.Advance(StateVerified)
	assert.ErrorIs(t, s.Advance(StateAwaitingVerification), ErrBadTransition)
	assert.ErrorIs(t, s.Advance(StateVerified), ErrBadTransition)
}

func Test_Session_Expiry(t *testing.T) {
	now := time.Now()
	s := NewSession(2, "b@example.com", now)
	assert.False(t, s.Expired(now.Add(47*time.Hour)))
	assert.True(t, s.Expired(now.Add(49*time.Hour)))
}

func Test_Sessions_AreIndependent(t *testing.T) {
	now := time.Now()
	a := NewSession(1, "a@example.com", now)
	b := NewSession(2, "b@example.com", now)

	_ = a.Advance(StateAwaitingVerification)
	_ = a.Advance(StateVerified)

	// advancing one signup never touches another
	assert.Equal(t, StateCreated, b.State)
}
