package access

import (
	"testing"

	"rhapsody-languages/internal/domain/languages"

	"github.com/stretchr/testify/assert"
)

func openLang(label string) languages.Language {
	return languages.Language{Label: label, Type: ContentOpen}
}

func subLang(label string) languages.Language {
	return languages.Language{Label: label, Type: ContentSubscription}
}

func Test_CheckAccess_OpenLanguageAlwaysGranted(t *testing.T) {
	cases := []struct {
		name   string
		langs  []string
		status string
	}{
		{"no subscription", nil, ""},
		{"empty languages", []string{}, ""},
		{"unrelated languages", []string{"French"}, "basic"},
		{"wildcard", []string{"*"}, "active"},
		{"cancelled", []string{}, "cancelled"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := CheckAccess(openLang("Yoruba"), tc.langs, tc.status)
			assert.True(t, d.HasAccess)
			assert.Equal(t, ActionNone, d.ActionType)
			assert.Equal(t, "Free language", d.Reason)
			assert.False(t, d.ShouldShowFreeTrialOption)
		})
	}
}

func Test_CheckAccess_WildcardGrantsEverything(t *testing.T) {
	d := CheckAccess(subLang("Zulu"), []string{"*"}, "active")
	assert.True(t, d.HasAccess)
	assert.Equal(t, "Free trial access", d.Reason)

	// Wildcard wins regardless of status, even a dead subscription.
	for _, status := range []string{"", "cancelled", "expired", "past_due"} {
		d := CheckAccess(subLang("Zulu"), []string{"French", "*"}, status)
		assert.True(t, d.HasAccess, "status %q", status)
	}
}

func Test_CheckAccess_ExactLabelMatch(t *testing.T) {
	d := CheckAccess(subLang("Zulu"), []string{"French", "Zulu"}, "basic")
	assert.True(t, d.HasAccess)
	assert.Equal(t, "Subscribed language", d.Reason)
	assert.Equal(t, ActionNone, d.ActionType)
}

func Test_CheckAccess_FailClosed_FreeTrialOffer(t *testing.T) {
	// "standard" or no status at all -> offer the free trial
	for _, status := range []string{"", "standard"} {
		d := CheckAccess(subLang("Zulu"), []string{"French"}, status)
		assert.False(t, d.HasAccess, "status %q", status)
		assert.Equal(t, ActionFreeTrial, d.ActionType)
		assert.True(t, d.ShouldShowFreeTrialOption)
		assert.NotEmpty(t, d.Message)
	}
}

func Test_CheckAccess_FailClosed_PurchaseOffer(t *testing.T) {
	for _, status := range []string{"basic", "premium", "active", "cancelled"} {
		d := CheckAccess(subLang("Zulu"), []string{"French"}, status)
		assert.False(t, d.HasAccess, "status %q", status)
		assert.Equal(t, ActionPurchase, d.ActionType)
		assert.False(t, d.ShouldShowFreeTrialOption)
		assert.Contains(t, d.Message, "Zulu")
	}
}

func Test_CheckAccess_NilLanguagesTreatedAsEmpty(t *testing.T) {
	d := CheckAccess(subLang("Zulu"), nil, "")
	assert.False(t, d.HasAccess)
	assert.Equal(t, ActionFreeTrial, d.ActionType)
}

func Test_CheckAccess_UnknownTypeFailsClosed(t *testing.T) {
	d := CheckAccess(languages.Language{Label: "Zulu", Type: "mystery"}, []string{"*"}, "active")
	assert.False(t, d.HasAccess)
	assert.Equal(t, "Unknown content type", d.Reason)
	assert.Equal(t, ActionNone, d.ActionType)
}

func Test_CheckAccess_EveryDecisionFullyPopulated(t *testing.T) {
	inputs := []struct {
		lang   languages.Language
		langs  []string
		status string
	}{
		{openLang("Yoruba"), nil, ""},
		{subLang("Zulu"), []string{"*"}, "active"},
		{subLang("Zulu"), []string{"Zulu"}, "basic"},
		{subLang("Zulu"), []string{"French"}, "standard"},
		{subLang("Zulu"), []string{"French"}, "premium"},
		{languages.Language{Label: "Zulu", Type: "???"}, nil, ""},
	}
	for _, in := range inputs {
		d := CheckAccess(in.lang, in.langs, in.status)
		assert.NotEmpty(t, d.Reason)
		assert.NotEmpty(t, d.Message)
		assert.NotEmpty(t, string(d.ActionType))
	}
}
