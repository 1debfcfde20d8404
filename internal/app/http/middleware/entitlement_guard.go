package middleware

import (
	"net/http"
	"time"

	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/access"
	"rhapsody-languages/internal/domain/subscriptions"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireAnyEntitlement blocks routes that only make sense for users with an
// active subscription or trial (e.g. changing plans, purchasing add-ons).
func RequireAnyEntitlement() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Preload("Plan").Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found or expired",
			})
			return
		}

		snap := access.SnapshotFor(time.Now(), user)
		if !snap.HasAnyAccess() && snap.Status != subscriptions.StatusFreeTrial {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription has expired",
			})
			return
		}

		c.Next()
	}
}
