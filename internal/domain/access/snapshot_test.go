package access

import (
	"testing"
	"time"

	"rhapsody-languages/internal/domain/languages"
	"rhapsody-languages/internal/domain/plans"
	"rhapsody-languages/internal/domain/subscriptions"
	"rhapsody-languages/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func Test_SnapshotFor_ActiveTrial(t *testing.T) {
	u := users.User{
		EntitledLanguages: []string{"*"},
		TrialStartAt:      timePtr(testNow.AddDate(0, 0, -2)),
		TrialEndAt:        timePtr(testNow.AddDate(0, 0, 12)),
	}

	snap := SnapshotFor(testNow, u)
	assert.Equal(t, subscriptions.StatusFreeTrial, snap.Status)
	assert.Equal(t, subscriptions.CategoryFreeTrial, snap.Category)
	assert.Contains(t, snap.Languages, "*")

	d := DecisionFor(testNow, u, languages.Language{Label: "Zulu", Type: ContentSubscription})
	assert.True(t, d.HasAccess)
}

func Test_SnapshotFor_ExpiredTrialDropsWildcard(t *testing.T) {
	u := users.User{
		EntitledLanguages: []string{"*", "French"},
		TrialStartAt:      timePtr(testNow.AddDate(0, -1, 0)),
		TrialEndAt:        timePtr(testNow.AddDate(0, 0, -1)),
	}

	snap := SnapshotFor(testNow, u)
	assert.NotContains(t, snap.Languages, "*")
	assert.Contains(t, snap.Languages, "French")
	assert.Empty(t, snap.Status)

	// Fail closed: the same user no longer reads Zulu, but keeps French.
	denied := DecisionFor(testNow, u, languages.Language{Label: "Zulu", Type: ContentSubscription})
	assert.False(t, denied.HasAccess)
	assert.Equal(t, ActionFreeTrial, denied.ActionType)

	kept := DecisionFor(testNow, u, languages.Language{Label: "French", Type: ContentSubscription})
	assert.True(t, kept.HasAccess)
}

func Test_SnapshotFor_ActiveSubscription(t *testing.T) {
	u := users.User{
		EntitledLanguages:        []string{"Zulu", "French"},
		SubscriptionId:           strPtr("sub_123"),
		StripeSubscriptionStatus: strPtr("active"),
		Plan:                     &plans.Plan{Category: "basic", PriceUSD: 9.99},
	}

	snap := SnapshotFor(testNow, u)
	assert.Equal(t, subscriptions.StatusActive, snap.Status)
	assert.Equal(t, subscriptions.CategoryBasic, snap.Category)
	assert.True(t, snap.HasPaidAccess())
	assert.True(t, snap.HasAnyAccess())

	// Denied language for a basic subscriber offers a purchase.
	d := DecisionFor(testNow, u, languages.Language{Label: "Igbo", Type: ContentSubscription})
	assert.False(t, d.HasAccess)
	assert.Equal(t, ActionPurchase, d.ActionType)
}

func Test_SnapshotFor_StandardSubscriberOfferedTrial(t *testing.T) {
	u := users.User{
		EntitledLanguages:        []string{"French"},
		SubscriptionId:           strPtr("sub_123"),
		StripeSubscriptionStatus: strPtr("active"),
		Plan:                     &plans.Plan{Category: "standard", PriceUSD: 4.99},
	}

	d := DecisionFor(testNow, u, languages.Language{Label: "Zulu", Type: ContentSubscription})
	assert.False(t, d.HasAccess)
	assert.Equal(t, ActionFreeTrial, d.ActionType)
	assert.True(t, d.ShouldShowFreeTrialOption)
}

func Test_SnapshotFor_CanceledWithPaidThroughGrace(t *testing.T) {
	u := users.User{
		EntitledLanguages:        []string{"Zulu"},
		SubscriptionId:           strPtr("sub_123"),
		StripeSubscriptionStatus: strPtr("canceled"),
		CurrentPeriodEnd:         timePtr(testNow.AddDate(0, 0, 10)),
		Plan:                     &plans.Plan{Category: "premium"},
	}

	snap := SnapshotFor(testNow, u)
	assert.Equal(t, subscriptions.StatusActive, snap.Status)

	u.CurrentPeriodEnd = timePtr(testNow.AddDate(0, 0, -1))
	snap = SnapshotFor(testNow, u)
	assert.Equal(t, subscriptions.StatusCancelled, snap.Status)
	assert.False(t, snap.HasAnyAccess())
}

func Test_SnapshotFor_PastDue(t *testing.T) {
	u := users.User{
		SubscriptionId:           strPtr("sub_123"),
		StripeSubscriptionStatus: strPtr("past_due"),
		Plan:                     &plans.Plan{Category: "basic"},
	}

	snap := SnapshotFor(testNow, u)
	assert.Equal(t, subscriptions.StatusPastDue, snap.Status)
	assert.False(t, snap.HasPaidAccess())
}

func Test_SnapshotFor_NoSubscriptionNoTrial(t *testing.T) {
	snap := SnapshotFor(testNow, users.User{})
	assert.Empty(t, snap.Status)
	assert.Empty(t, snap.Languages)
	assert.False(t, snap.HasAnyAccess())
}
