package stripe

import "strings"

// NormalizeStripeStatus collapses Stripe's subscription status zoo into the
// handful of values the entitlement snapshot understands. Used ONLY for
// billing.subscription.status.
func NormalizeStripeStatus(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "none"
	}
	switch status := strings.TrimSpace(*s); status {
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid", "paused":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return status
	}
}
