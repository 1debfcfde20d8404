package routes

import (
	adminapi "rhapsody-languages/internal/api/admin"
	authapi "rhapsody-languages/internal/api/auth"
	"rhapsody-languages/internal/api/billing"
	languagesapi "rhapsody-languages/internal/api/languages"
	"rhapsody-languages/internal/api/plans"
	readingapi "rhapsody-languages/internal/api/reading"
	stripewebhooks "rhapsody-languages/internal/api/stripewebhook"
	"rhapsody-languages/internal/api/users"
	"rhapsody-languages/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, with input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/languages", languagesapi.ListLanguages)
	auth.GET("/languages/:label", languagesapi.GetLanguage)
	auth.GET("/languages/:label/today", readingapi.GetToday)
	auth.POST("/languages/:label/pages/validate", readingapi.ValidatePage)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/free-trial", billing.StartFreeTrial)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	// Add-on purchases only make sense with a live entitlement
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireAnyEntitlement())
	subscribed.POST("/purchase-language", billing.PurchaseLanguage)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
	admin.POST("/languages", languagesapi.UpsertLanguages)
}
