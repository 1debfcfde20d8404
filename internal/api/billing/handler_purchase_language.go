package billing

import (
	"fmt"
	"net/http"
	"os"

	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/languages"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// PurchaseLanguage starts a checkout for a single add-on language. The
// webhook appends the label to the user's entitlements once payment lands.
func PurchaseLanguage(c *gin.Context) {
	var body struct {
		Label string `json:"label"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid label"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var lang languages.Language
	if err := database.DB.Where("label = ?", body.Label).First(&lang).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown language"})
		return
	}
	if lang.Type == "open" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This language is already free"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	for _, l := range user.EntitledLanguages {
		if l == lang.Label {
			c.JSON(http.StatusConflict, gin.H{"error": "Language already in your plan"})
			return
		}
	}

	if err := ensureStripeCustomer(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
		return
	}

	addOnPriceID := os.Getenv("STRIPE_LANGUAGE_ADDON_PRICE_ID")
	if addOnPriceID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Add-on price not configured"})
		return
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "rhapsodylanguages://billing"
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/languages"),
		CancelURL:  stripe.String(appURL + "/languages?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		Customer:   stripe.String(*user.StripeCustomerID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(addOnPriceID), Quantity: stripe.Int64(1)},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(user.ID)),

		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"user_id":        fmt.Sprint(user.ID),
				"language_label": lang.Label,
			},
		},
		Metadata: map[string]string{
			"user_id":        fmt.Sprint(user.ID),
			"language_label": lang.Label,
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
