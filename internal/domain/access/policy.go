package access

import "rhapsody-languages/internal/domain/languages"

// CheckAccess decides whether one language may be read/listened/watched given
// the user's entitled language labels and subscription status. Precedence is
// fixed: open content first, then wildcard, then exact label match, then the
// fail-closed call-to-action branch. Pure function, never errors; ambiguous
// input always degrades to a denial rather than exposing content.
func CheckAccess(lang languages.Language, subscriptionLanguages []string, subscriptionStatus string) AccessDecision {
	if subscriptionLanguages == nil {
		subscriptionLanguages = []string{}
	}

	switch lang.Type {
	case ContentOpen:
		return AccessDecision{
			HasAccess:  true,
			Reason:     "Free language",
			Message:    "This language is free for everyone.",
			ActionType: ActionNone,
		}

	case ContentSubscription:
		if containsLabel(subscriptionLanguages, WildcardLanguage) {
			return AccessDecision{
				HasAccess:  true,
				Reason:     "Free trial access",
				Message:    "You have free trial access to all languages.",
				ActionType: ActionNone,
			}
		}
		if containsLabel(subscriptionLanguages, lang.Label) {
			return AccessDecision{
				HasAccess:  true,
				Reason:     "Subscribed language",
				Message:    "This language is included in your subscription.",
				ActionType: ActionNone,
			}
		}
		return denied(lang, subscriptionStatus)

	default:
		// Catalogue sent a type we don't know. Fail closed, never panic.
		return AccessDecision{
			HasAccess:  false,
			Reason:     "Unknown content type",
			Message:    "This content is not available.",
			ActionType: ActionNone,
		}
	}
}

func denied(lang languages.Language, status string) AccessDecision {
	if status == "" || status == "standard" {
		return AccessDecision{
			HasAccess:                 false,
			Reason:                    "Not subscribed",
			Message:                   "Start a free trial to read " + lang.Label + " and every other language.",
			ActionType:                ActionFreeTrial,
			ActionText:                "Start Free Trial",
			ShouldShowFreeTrialOption: true,
		}
	}
	return AccessDecision{
		HasAccess:  false,
		Reason:     "Language not in plan",
		Message:    lang.Label + " is not part of your plan. Add it to keep reading.",
		ActionType: ActionPurchase,
		ActionText: "Add " + lang.Label,
	}
}

func containsLabel(labels []string, target string) bool {
	for _, l := range labels {
		if l == target {
			return true
		}
	}
	return false
}
