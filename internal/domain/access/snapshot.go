package access

import (
	"time"

	"rhapsody-languages/internal/domain/languages"
	"rhapsody-languages/internal/domain/plans"
	"rhapsody-languages/internal/domain/subscriptions"
	"rhapsody-languages/internal/domain/users"
	"rhapsody-languages/internal/infra/stripe"
)

// SnapshotFor builds the entitlement snapshot the access engine consumes.
// Callers rebuild it after every entitlement-changing event (payment success,
// free-trial activation); the engine itself never caches.
func SnapshotFor(now time.Time, u users.User) subscriptions.Snapshot {
	langs := u.EntitledLanguages
	if langs == nil {
		langs = []string{}
	}

	// Active promotional trial: wildcard entitlement, trial status.
	if u.TrialEndAt != nil && now.Before(*u.TrialEndAt) {
		return subscriptions.Snapshot{
			Languages: langs,
			Status:    subscriptions.StatusFreeTrial,
			Category:  subscriptions.CategoryFreeTrial,
		}
	}

	// Trial over: the wildcard no longer counts. Fail closed.
	langs = withoutWildcard(langs)

	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return subscriptions.Snapshot{Languages: langs}
	}

	category := plans.PlanCategory(u.Plan)

	switch stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus) {
	case "active", "trialing":
		return subscriptions.Snapshot{
			Languages: langs,
			Status:    subscriptions.StatusActive,
			Category:  category,
		}

	case "past_due":
		return subscriptions.Snapshot{
			Languages: langs,
			Status:    subscriptions.StatusPastDue,
			Category:  category,
		}

	case "canceled":
		// Paid-through grace: keep access until the period the user paid for.
		if u.CurrentPeriodEnd != nil && now.Before(*u.CurrentPeriodEnd) {
			return subscriptions.Snapshot{
				Languages: langs,
				Status:    subscriptions.StatusActive,
				Category:  category,
			}
		}
		return subscriptions.Snapshot{
			Languages: langs,
			Status:    subscriptions.StatusCancelled,
			Category:  category,
		}

	default:
		return subscriptions.Snapshot{
			Languages: langs,
			Status:    subscriptions.StatusExpired,
			Category:  category,
		}
	}
}

// DecisionFor is the glue the handlers use: snapshot + per-language check.
// The status argument of CheckAccess carries the plan category for active
// subscribers (that is what selects free-trial vs purchase messaging) and the
// raw status otherwise.
func DecisionFor(now time.Time, u users.User, lang languages.Language) AccessDecision {
	snap := SnapshotFor(now, u)
	statusArg := snap.Status
	if snap.HasAnyAccess() {
		statusArg = snap.Category
	}
	return CheckAccess(lang, snap.Languages, statusArg)
}

func withoutWildcard(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != WildcardLanguage {
			out = append(out, l)
		}
	}
	return out
}
