package plans

import (
	"testing"

	"rhapsody-languages/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
)

func Test_PlanCategory_PrefersStoredValue(t *testing.T) {
	assert.Equal(t, subscriptions.CategoryPremium, PlanCategory(&Plan{Category: "premium", PriceUSD: 1}))
	assert.Equal(t, subscriptions.CategoryBasic, PlanCategory(&Plan{Category: " Basic ", PriceUSD: 99}))
	assert.Equal(t, subscriptions.CategoryStandard, PlanCategory(&Plan{Category: "STANDARD"}))
}

func Test_PlanCategory_FallsBackToPrice(t *testing.T) {
	assert.Equal(t, subscriptions.CategoryPremium, PlanCategory(&Plan{PriceUSD: 19.99}))
	assert.Equal(t, subscriptions.CategoryBasic, PlanCategory(&Plan{PriceUSD: 9.99}))
	assert.Equal(t, subscriptions.CategoryStandard, PlanCategory(&Plan{PriceUSD: 4.99}))
	assert.Equal(t, subscriptions.CategoryFree, PlanCategory(&Plan{PriceUSD: 0}))
}

func Test_PlanCategory_NilPlan(t *testing.T) {
	assert.Equal(t, subscriptions.CategoryFree, PlanCategory(nil))
}
