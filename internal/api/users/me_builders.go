package users

import (
	"time"

	"rhapsody-languages/internal/domain/plans"
	"rhapsody-languages/internal/domain/subscriptions"
	"rhapsody-languages/internal/domain/users"
	"rhapsody-languages/internal/infra/stripe"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID,
		Key:           p.Name,
		Interval:      p.Interval,
		PriceUSD:      p.PriceUSD,
		Category:      plans.PlanCategory(p),
		StripePriceID: p.StripePriceID,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus),
		StartsAt:             u.SubscriptionStart,
		CurrentPeriodEnd:     u.CurrentPeriodEnd,
		StripeSubscriptionID: u.SubscriptionId,
	}
}

func BuildTrialDTO(now time.Time, start, end *time.Time) *TrialDTO {
	if start == nil || end == nil {
		return nil
	}

	var daysLeft *int
	if now.Before(*end) {
		d := int(time.Until(*end).Hours() / 24)
		if d < 0 {
			d = 0
		}
		daysLeft = &d
	} else {
		d := 0
		daysLeft = &d
	}

	return &TrialDTO{
		StartsAt: start,
		EndsAt:   end,
		DaysLeft: daysLeft,
	}
}

func BuildSubscriptionView(snap subscriptions.Snapshot) SubscriptionView {
	return SubscriptionView{
		Languages: snap.Languages,
		Status:    snap.Status,
		Category:  snap.Category,
		HasPaid:   snap.HasPaidAccess(),
		HasAny:    snap.HasAnyAccess(),
	}
}
