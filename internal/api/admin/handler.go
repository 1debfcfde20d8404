package admin

import (
	"net/http"
	"time"

	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/billing"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Lastname          string     `json:"lastname"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	IsVerified        bool       `json:"is_verified"`
	PlanName          *string    `json:"plan_name,omitempty"`
	EntitledLanguages []string   `json:"entitled_languages,omitempty"`
	StripeCustomerID  *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID       *string    `json:"stripe_subscription_id,omitempty"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
}

type AdminPayment struct {
	ID            uint    `json:"id"`
	Email         string  `json:"email"`
	PlanName      *string `json:"plan_name,omitempty"`
	LanguageLabel *string `json:"language_label,omitempty"`
	AmountUSD     float64 `json:"amount_usd"`
	Status        string  `json:"status"`
	InvoiceID     *string `json:"invoice_id,omitempty"`
	ReceiptURL    *string `json:"receipt_url,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func AdminDashboard(c *gin.Context) {
	var totalUsers int64
	database.DB.Model(&users.User{}).Count(&totalUsers)

	var totalRevenue float64
	database.DB.Model(&billing.Payment{}).
		Select("COALESCE(SUM(amount_usd), 0)").
		Scan(&totalRevenue)

	c.JSON(http.StatusOK, gin.H{
		"total_users":   totalUsers,
		"total_revenue": totalRevenue,
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Preload("Plan").Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		var planName *string
		if u.Plan != nil {
			planName = &u.Plan.Name
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:                u.ID,
			Name:              u.Name,
			Lastname:          u.Lastname,
			Email:             u.Email,
			Role:              u.Role,
			IsVerified:        u.IsVerified,
			PlanName:          planName,
			EntitledLanguages: u.EntitledLanguages,
			StripeCustomerID:  u.StripeCustomerID,
			StripeSubID:       u.SubscriptionId,
			SubscriptionStart: u.SubscriptionStart,
			SubscriptionEnd:   u.SubscriptionEnd,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.
		Preload("User").
		Preload("Plan").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var out []AdminPayment
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		out = append(out, AdminPayment{
			ID:            p.ID,
			Email:         p.User.Email,
			PlanName:      planName,
			LanguageLabel: p.LanguageLabel,
			AmountUSD:     p.AmountUSD,
			Status:        p.Status,
			InvoiceID:     p.InvoiceID,
			ReceiptURL:    p.ReceiptURL,
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, out)
}

func GetUserDetails(c *gin.Context) {
	var user users.User
	if err := database.DB.Preload("Plan").Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	database.DB.Preload("Plan").Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments)

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"payments": payments,
	})
}
