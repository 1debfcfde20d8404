package subscriptions

// Subscription status values as the mobile client sees them.
const (
	StatusActive    = "active"
	StatusFreeTrial = "free_trial"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
	StatusPastDue   = "past_due"
)

// Plan categories (single source of truth)
const (
	CategoryFree      = "free"
	CategoryStandard  = "standard"
	CategoryBasic     = "basic"
	CategoryPremium   = "premium"
	CategoryFreeTrial = "free_trial"
)

// Snapshot is the per-user entitlement view the access engine consumes.
// Owned by the auth layer and rebuilt after every entitlement-changing event
// (payment success, free-trial activation); never persisted as-is.
type Snapshot struct {
	Languages []string `json:"languages"` // may contain the "*" wildcard
	Status    string   `json:"status"`
	Category  string   `json:"category"`
}

// HasPaidAccess: active AND on a paid category.
func (s Snapshot) HasPaidAccess() bool {
	if s.Status != StatusActive {
		return false
	}
	switch s.Category {
	case CategoryStandard, CategoryBasic, CategoryPremium:
		return true
	}
	return false
}

// HasAnyAccess: active regardless of category (covers free-trial-as-active).
func (s Snapshot) HasAnyAccess() bool {
	return s.Status == StatusActive
}
