package access

// ContentType of a language entry as delivered by the catalogue feed.
const (
	ContentOpen         = "open"
	ContentSubscription = "subscription"
)

// Wildcard entitlement: a subscription snapshot containing this label grants
// every language (promotional free-trial window).
const WildcardLanguage = "*"

type ActionType string

const (
	ActionNone      ActionType = "none"
	ActionFreeTrial ActionType = "free-trial"
	ActionPurchase  ActionType = "purchase"
	ActionUpgrade   ActionType = "upgrade"
)

// AccessDecision is computed per language + subscription snapshot and never
// persisted. Every input combination yields a fully-populated decision.
type AccessDecision struct {
	HasAccess                 bool       `json:"has_access"`
	Reason                    string     `json:"reason"`
	Message                   string     `json:"message"`
	ActionType                ActionType `json:"action_type"`
	ActionText                string     `json:"action_text"`
	ShouldShowFreeTrialOption bool       `json:"should_show_free_trial_option"`
}
