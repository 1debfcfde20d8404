package stripewebhooks

import (
	"time"

	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionDeleted(c *gin.Context, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	status := string(sub.Status)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	var user users.User
	userID := userIDFromMetadata(sub.Metadata)
	if userID != 0 {
		_ = database.DB.Preload("Plan").Where("id = ?", userID).First(&user).Error
	}
	if user.ID == 0 {
		_ = database.DB.Preload("Plan").Where("subscription_id = ?", sub.ID).First(&user).Error
	}
	if user.ID == 0 {
		return nil
	}

	updates := map[string]interface{}{
		"stripe_subscription_status": status,
		"subscription_end":           periodEnd,
		"current_period_end":         periodEnd,
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		return err
	}

	// Revoke the plan's bundled languages. Add-on purchases survive a
	// cancelled plan, so only the bundle is stripped.
	if user.Plan != nil && len(user.Plan.IncludedLanguages) > 0 {
		entitled := withoutLabels(withoutWildcard(user.EntitledLanguages), user.Plan.IncludedLanguages)
		return database.DB.Model(&users.User{ID: user.ID}).
			Update("EntitledLanguages", entitled).Error
	}
	return nil
}

func withoutLabels(labels, drop []string) []string {
	blocked := map[string]bool{}
	for _, l := range drop {
		blocked[l] = true
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !blocked[l] {
			out = append(out, l)
		}
	}
	return out
}
