package subscriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HasPaidAccess(t *testing.T) {
	cases := []struct {
		status   string
		category string
		want     bool
	}{
		{StatusActive, CategoryStandard, true},
		{StatusActive, CategoryBasic, true},
		{StatusActive, CategoryPremium, true},
		{StatusActive, CategoryFree, false},
		{StatusActive, CategoryFreeTrial, false},
		{StatusFreeTrial, CategoryPremium, false},
		{StatusCancelled, CategoryPremium, false},
		{StatusPastDue, CategoryBasic, false},
		{"", "", false},
	}
	for _, tc := range cases {
		snap := Snapshot{Status: tc.status, Category: tc.category}
		assert.Equal(t, tc.want, snap.HasPaidAccess(), "status=%q category=%q", tc.status, tc.category)
	}
}

func Test_HasAnyAccess(t *testing.T) {
	// active counts regardless of category (free-trial-as-active case)
	assert.True(t, Snapshot{Status: StatusActive, Category: CategoryFree}.HasAnyAccess())
	assert.True(t, Snapshot{Status: StatusActive, Category: CategoryFreeTrial}.HasAnyAccess())
	assert.False(t, Snapshot{Status: StatusExpired, Category: CategoryPremium}.HasAnyAccess())
	assert.False(t, Snapshot{}.HasAnyAccess())
}
