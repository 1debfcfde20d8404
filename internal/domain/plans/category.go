package plans

import (
	"strings"

	"rhapsody-languages/internal/domain/subscriptions"
)

// PlanCategory returns the effective category for a plan.
// Priority:
// 1. Explicit Category stored in DB (synced from Stripe price metadata)
// 2. Fallback inference by price (legacy safety net)
func PlanCategory(p *Plan) string {
	if p == nil {
		return subscriptions.CategoryFree
	}

	category := strings.ToLower(strings.TrimSpace(p.Category))
	switch category {
	case subscriptions.CategoryStandard, subscriptions.CategoryBasic, subscriptions.CategoryPremium:
		return category
	}

	return inferCategoryFromPrice(p.PriceUSD)
}

// inferCategoryFromPrice exists ONLY as a backward-compatibility fallback for
// plans synced before the category metadata existed.
func inferCategoryFromPrice(priceUSD float64) string {
	switch {
	case priceUSD >= 15:
		return subscriptions.CategoryPremium
	case priceUSD >= 8:
		return subscriptions.CategoryBasic
	case priceUSD > 0:
		return subscriptions.CategoryStandard
	default:
		return subscriptions.CategoryFree
	}
}
