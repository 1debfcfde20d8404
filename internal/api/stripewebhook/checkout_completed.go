package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/billing"
	"rhapsody-languages/internal/domain/plans"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
)

func handleCheckoutSessionCompleted(c *gin.Context, session *stripe.CheckoutSession) error {
	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	// Single-language add-on purchases are one-off payments carrying a
	// language_label; everything else is a plan subscription.
	if fullSession.Metadata != nil && fullSession.Metadata["language_label"] != "" {
		return handleLanguagePurchase(fullSession)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	subscriptionID := fullSession.Subscription.ID

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	userID, err := userIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	// Map Stripe price -> Plan
	priceID := subData.Items.Data[0].Price.ID
	var plan plans.Plan
	if err := database.DB.Where("stripe_price_id = ?", priceID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found for stripe price_id=%s: %w", priceID, err)
	}

	now := time.Now()
	periodEnd := time.Unix(subData.CurrentPeriodEnd, 0)
	status := string(subData.Status)

	// The plan replaces the trial: entitlements become the plan's bundle plus
	// any add-on languages bought earlier (wildcard dropped).
	entitled := mergeLabels(withoutWildcard(user.EntitledLanguages), plan.IncludedLanguages)

	updates := map[string]interface{}{
		"plan_id":                    plan.ID,
		"subscription_id":            subscriptionID,
		"subscription_start":         now,
		"subscription_end":           periodEnd,
		"current_period_end":         periodEnd,
		"stripe_subscription_status": status,
		"trial_start_at":             nil,
		"trial_end_at":               nil,
	}

	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		updates["stripe_customer_id"] = fullSession.Customer.ID
	}

	// Cancel a superseded subscription if the user re-subscribed.
	if user.SubscriptionId != nil && *user.SubscriptionId != "" && *user.SubscriptionId != subscriptionID {
		_, _ = subscription.Cancel(*user.SubscriptionId, nil)
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user after checkout: %w", err)
	}

	// Updated separately: the serializer only runs on field assignment.
	if err := database.DB.Model(&users.User{ID: user.ID}).
		Update("EntitledLanguages", entitled).Error; err != nil {
		return fmt.Errorf("failed to update entitlements after checkout: %w", err)
	}

	recordPayment(fullSession, user.ID, &plan.ID, nil, subscriptionID)
	return nil
}

func handleLanguagePurchase(fullSession *stripe.CheckoutSession) error {
	label := fullSession.Metadata["language_label"]

	userIDStr := fullSession.Metadata["user_id"]
	if userIDStr == "" {
		userIDStr = fullSession.ClientReferenceID
	}
	if userIDStr == "" {
		return errors.New("language purchase missing user_id")
	}
	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}

	var user users.User
	if err := database.DB.Where("id = ?", uid64).First(&user).Error; err != nil {
		// acknowledge so Stripe doesn't retry a deleted account forever
		return nil
	}

	user.EntitledLanguages = mergeLabels(user.EntitledLanguages, []string{label})
	if err := database.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to grant language %q: %w", label, err)
	}

	recordPayment(fullSession, user.ID, nil, &label, "")
	return nil
}

func recordPayment(fullSession *stripe.CheckoutSession, userID uint, planID *uint, languageLabel *string, subscriptionID string) {
	payment := billing.Payment{
		UserID:          userID,
		PlanID:          planID,
		LanguageLabel:   languageLabel,
		StripeSessionID: fullSession.ID,
		AmountUSD:       float64(fullSession.AmountTotal) / 100.0,
		Status:          string(fullSession.PaymentStatus),
	}
	if subscriptionID != "" {
		payment.StripeSubscriptionID = &subscriptionID
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		// duplicate webhooks hit the unique session id; nothing to do
		fmt.Println("⚠️ Payment record skipped:", err)
	}
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}

func mergeLabels(existing, extra []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(existing)+len(extra))
	for _, l := range append(existing, extra...) {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func withoutWildcard(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != "*" {
			out = append(out, l)
		}
	}
	return out
}
