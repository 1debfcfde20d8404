package users

import "time"

type MeResponse struct {
	User         UserDTO          `json:"user"`
	Billing      BillingDTO       `json:"billing"`
	Subscription SubscriptionView `json:"subscription"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	PriceUSD      float64 `json:"price_usd"`
	Category      string  `json:"category"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	StartsAt             *time.Time `json:"starts_at"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft *int       `json:"days_left"`
}

/* ---------- ENTITLEMENT ---------- */

// SubscriptionView is the entitlement snapshot the app feeds into its access
// checks: entitled labels (possibly the "*" wildcard), status and category.
type SubscriptionView struct {
	Languages []string `json:"languages"`
	Status    string   `json:"status"`
	Category  string   `json:"category"`
	HasPaid   bool     `json:"has_paid_access"`
	HasAny    bool     `json:"has_any_access"`
}
