package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_RuleOrder(t *testing.T) {
	cases := []struct {
		code     string
		expected string
	}{
		{"api_key_expired", "Authentication"},
		{"card_declined", "Payment Processing"},
		{"parameter_missing", "Validation"},
		{"rate_limit_exceeded", "Rate Limiting"},
		{"webhook_timeout", "Webhooks"},
		// Matches both the account and subscription rules; the earlier wins.
		{"customer_max_subscriptions", "Account Management"},
		{"transfer_failed", "Transfers & Payouts"},
		{"invoice_upcoming_none", "Subscriptions"},
		{"platform_api_key_expired", "Authentication"},
		{"tax_id_invalid", "Validation"}, // "invalid" precedes "tax"
		{"shipping_calculation_failed", "Tax & Shipping"},
		{"something_else", "General"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, Categorize(tc.code), "code %s", tc.code)
	}
}

func TestInferSeverity(t *testing.T) {
	// Code keywords
	assert.Equal(t, SeverityCritical, InferSeverity("api_key_expired", ""))
	assert.Equal(t, SeverityCritical, InferSeverity("forbidden", ""))
	// Description keywords are case-insensitive
	assert.Equal(t, SeverityCritical, InferSeverity("some_code", "Authentication failed"))
	// Warning beats default but not critical
	assert.Equal(t, SeverityWarning, InferSeverity("coupon_expired", ""))
	assert.Equal(t, SeverityWarning, InferSeverity("some_code", "We recommend updating the API version"))
	// Everything else
	assert.Equal(t, SeverityError, InferSeverity("card_declined", "The card was declined"))
}

func TestEstimateFrequency(t *testing.T) {
	assert.Equal(t, "Very Common", EstimateFrequency("parameter_missing"))
	assert.Equal(t, "Common", EstimateFrequency("card_declined"))
	assert.Equal(t, "Common", EstimateFrequency("api_key_expired"))
	assert.Equal(t, "Uncommon", EstimateFrequency("rate_limit_exceeded"))
	assert.Equal(t, "Rare", EstimateFrequency("webhook_timeout"))
	assert.Equal(t, "Moderate", EstimateFrequency("account_closed"))
}

func TestDeriveTags(t *testing.T) {
	tags := DeriveTags("card_declined", "Payment Processing")
	assert.Equal(t, []string{"stripe", "api", "card", "payment", "payment_processing"}, tags)

	// Duplicates collapse preserving first-seen order
	tags = DeriveTags("auth_error", "Authentication")
	assert.Equal(t, []string{"stripe", "api", "authentication", "security"}, tags)
}

func TestDefaultSolution(t *testing.T) {
	assert.Equal(t,
		"Implement exponential backoff in your retry logic.",
		DefaultSolution("Rate Limiting"))
	// Unknown categories fall back to the General text
	assert.Equal(t, DefaultSolution("General"), DefaultSolution("Nonexistent"))
}

func TestUpvotes(t *testing.T) {
	assert.Equal(t, 10, Upvotes(SeverityCritical))
	assert.Equal(t, 7, Upvotes(SeverityError))
	assert.Equal(t, 5, Upvotes(SeverityWarning))
	assert.Equal(t, 3, Upvotes(Severity("unknown")))
}
