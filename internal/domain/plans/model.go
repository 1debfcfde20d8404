package plans

type Plan struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	PriceUSD      float64
	StripePriceID string `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_plans_stripe_price_id"`
	Interval      string
	Category      string `gorm:"column:category"` // "standard" | "basic" | "premium"

	// Language labels bundled with the plan, stored as JSON.
	IncludedLanguages []string `gorm:"column:included_languages;serializer:json"`
}
