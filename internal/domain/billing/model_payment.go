package billing

import (
	"time"

	"rhapsody-languages/internal/domain/plans"
	"rhapsody-languages/internal/domain/users"
)

type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint
	User                 users.User
	PlanID               *uint
	Plan                 *plans.Plan
	// Set for single-language add-on purchases instead of PlanID.
	LanguageLabel        *string `gorm:"column:language_label"`
	StripeSessionID      string  `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountUSD            float64
	Status               string
	InvoiceID            *string
	ReceiptURL           *string
	CreatedAt            time.Time
}
