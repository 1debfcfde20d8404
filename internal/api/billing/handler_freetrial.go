package billing

import (
	"net/http"
	"time"

	"rhapsody-languages/config"
	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/access"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const trialDays = 14

// StartFreeTrial grants the "*" wildcard entitlement for the trial period.
// The promotion is only open until config.FREE_TRIAL_CUTOFF, and only once
// per account.
func StartFreeTrial(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	now := time.Now()
	if now.After(config.FREE_TRIAL_CUTOFF) {
		c.JSON(http.StatusGone, gin.H{"error": "The free trial promotion has ended"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		return
	}

	if user.TrialStartAt != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Free trial already used"})
		return
	}

	trialEnd := now.AddDate(0, 0, trialDays)
	// The trial never outlives the promotion itself.
	if trialEnd.After(config.FREE_TRIAL_CUTOFF) {
		trialEnd = config.FREE_TRIAL_CUTOFF
	}

	entitled := append(user.EntitledLanguages, access.WildcardLanguage)

	user.TrialStartAt = &now
	user.TrialEndAt = &trialEnd
	user.EntitledLanguages = entitled
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate free trial"})
		return
	}

	snap := access.SnapshotFor(now, user)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Free trial activated",
		"trial_ends":   trialEnd,
		"subscription": snap,
	})
}
