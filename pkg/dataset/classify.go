package dataset

import "strings"

// The classifiers below are ordered lists of (keywords, result) pairs
// evaluated first-match-wins over case-sensitive substring containment of the
// natural code. The check order is load-bearing: codes matching multiple
// predicates (e.g. "customer_max_subscriptions") take the earlier result.

type keywordRule struct {
	keywords []string
	result   string
}

func (r keywordRule) matches(code string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(code, kw) {
			return true
		}
	}
	return false
}

var categoryRules = []keywordRule{
	{[]string{"auth", "key", "token", "secret"}, "Authentication"},
	{[]string{"card", "payment", "charge", "source"}, "Payment Processing"},
	{[]string{"parameter", "missing", "required", "invalid"}, "Validation"},
	{[]string{"rate", "limit", "quota"}, "Rate Limiting"},
	{[]string{"webhook", "event"}, "Webhooks"},
	{[]string{"account", "customer", "person"}, "Account Management"},
	{[]string{"transfer", "payout", "balance"}, "Transfers & Payouts"},
	{[]string{"subscription", "plan", "invoice"}, "Subscriptions"},
	{[]string{"connect", "platform"}, "Stripe Connect"},
	{[]string{"tax", "shipping"}, "Tax & Shipping"},
}

// Categorize maps a natural error code to its coarse category.
func Categorize(code string) string {
	for _, rule := range categoryRules {
		if rule.matches(code) {
			return rule.result
		}
	}
	return "General"
}

var criticalCodeKeywords = []string{"auth", "key", "secret", "forbidden", "unauthorized"}
var warningCodeKeywords = []string{"expired", "deprecated"}

// InferSeverity classifies urgency from the code and the human description.
// Keyword checks on the code are case-sensitive; description checks are not.
func InferSeverity(code, description string) Severity {
	desc := strings.ToLower(description)

	// Errors that completely block functionality
	for _, kw := range criticalCodeKeywords {
		if strings.Contains(code, kw) {
			return SeverityCritical
		}
	}
	if strings.Contains(desc, "authentication") || strings.Contains(desc, "unauthorized") {
		return SeverityCritical
	}

	for _, kw := range warningCodeKeywords {
		if strings.Contains(code, kw) {
			return SeverityWarning
		}
	}
	if strings.Contains(desc, "warning") || strings.Contains(desc, "recommend") {
		return SeverityWarning
	}

	return SeverityError
}

var frequencyRules = []keywordRule{
	{[]string{"invalid", "missing", "required"}, "Very Common"},
	{[]string{"card", "payment", "charge"}, "Common"},
	{[]string{"auth", "key"}, "Common"},
	{[]string{"rate", "limit"}, "Uncommon"},
	{[]string{"webhook", "connect"}, "Rare"},
}

// EstimateFrequency maps a code to a rough how-often-seen bucket.
func EstimateFrequency(code string) string {
	for _, rule := range frequencyRules {
		if rule.matches(code) {
			return rule.result
		}
	}
	return "Moderate"
}

var tagRules = []struct {
	keyword string
	tags    []string
}{
	{"card", []string{"card", "payment"}},
	{"customer", []string{"customer", "account"}},
	{"auth", []string{"authentication", "security"}},
	{"webhook", []string{"webhook", "events"}},
	{"connect", []string{"connect", "platform"}},
	{"subscription", []string{"subscription", "recurring"}},
	{"transfer", []string{"transfer", "payout"}},
}

// DeriveTags builds the keyword tag set for a code: a fixed base, keyword
// rules, then the lower-cased category with spaces as underscores. Duplicates
// are removed while preserving first-seen order.
func DeriveTags(code, category string) []string {
	tags := []string{"stripe", "api"}
	for _, rule := range tagRules {
		if strings.Contains(code, rule.keyword) {
			tags = append(tags, rule.tags...)
		}
	}
	tags = append(tags, strings.ReplaceAll(strings.ToLower(category), " ", "_"))

	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

var categorySolutions = map[string]string{
	"Authentication":     "Verify your Stripe API key is correct and has the necessary permissions.",
	"Payment Processing": "Verify the payment method details are correct and valid.",
	"Validation":         "Check that all required parameters are included in your request.",
	"Account Management": "Verify the account or customer ID exists and is accessible.",
	"Rate Limiting":      "Implement exponential backoff in your retry logic.",
	"Webhooks":           "Verify your webhook endpoint is accessible and returns a 2xx status.",
	"General":            "Review the Stripe API documentation for this specific error.",
}

// DefaultSolution returns the category-keyed suggested fix used when a record
// carries no curated solution text.
func DefaultSolution(category string) string {
	if s, ok := categorySolutions[category]; ok {
		return s
	}
	return categorySolutions["General"]
}

// Upvotes weights a solution by severity for ranking in the remote store.
func Upvotes(severity Severity) int {
	switch severity {
	case SeverityCritical:
		return 10
	case SeverityError:
		return 7
	case SeverityWarning:
		return 5
	default:
		return 3
	}
}
