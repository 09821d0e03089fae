package dataset

import "time"

// Stripe documentation entry points used for deep links.
const (
	docErrorCodes   = "https://docs.stripe.com/error-codes"
	docDeclineCodes = "https://docs.stripe.com/declines/codes"
	docAPIErrors    = "https://docs.stripe.com/api/errors"
)

// defaultStatus maps error types to their documented HTTP status.
var defaultStatus = map[string]int{
	TypeInvalidRequest: 400,
	TypeAuthentication: 401,
	TypeCard:           402,
	TypeRateLimit:      429,
}

// primaryResource rewrites the "any" placeholder to the platform's most
// common resource. Display convenience only; must run before link computation.
var primaryResource = map[APIName]string{
	APIStripe: "payment_intent",
	APIGitHub: "repository",
}

// linkFor resolves the documentation deep link for a record. Precedence:
// decline-codes anchor, then error-codes anchor, then the generic API errors
// page for type-only authentication failures, then the error-codes index.
func linkFor(r ErrorRecord) string {
	if r.DeclineCode != "" {
		return docDeclineCodes + "#" + r.DeclineCode
	}
	if r.ErrorCode != "" {
		return docErrorCodes + "#" + r.ErrorCode
	}
	if r.ErrorType == TypeAuthentication {
		return docAPIErrors
	}
	return docErrorCodes
}

// Normalize fills in the derived fields of a partial record. It is pure and
// idempotent: a record that already went through Normalize comes back
// unchanged.
func Normalize(r ErrorRecord) ErrorRecord {
	return NormalizeAt(r, time.Now().UTC().Format("2006-01-02"))
}

// NormalizeAt is Normalize with an explicit build date for reproducible runs.
func NormalizeAt(r ErrorRecord, date string) ErrorRecord {
	if r.LastVerified == "" {
		r.LastVerified = date
	}

	// Default HTTP status by type if not provided
	if status, ok := defaultStatus[r.ErrorType]; ok && r.HTTPStatus == 0 {
		r.HTTPStatus = status
	}

	// Rate limit is always 429, whatever the seed claims.
	if r.ErrorType == TypeRateLimit {
		r.HTTPStatus = 429
	}

	// Prefer PaymentIntents in modern flows (only heuristic for "any")
	if r.Resource == "any" {
		if res, ok := primaryResource[r.API]; ok {
			r.Resource = res
		}
	}

	// Stripe links are always recomputed so precedence holds even over stale
	// curated URLs; other APIs keep their curated links.
	if r.API == APIStripe || r.SourceURL == "" {
		r.SourceURL = linkFor(r)
	}

	// Stripe's public list has no granular code for an invalid key, so a code
	// on an authentication_error is bogus. Drop it and recompute the link,
	// since the deletion changes which precedence branch applies.
	if r.API == APIStripe && r.ErrorType == TypeAuthentication && r.ErrorCode != "" {
		r.ErrorCode = ""
		r.SourceURL = linkFor(r)
	}

	if r.Severity == "" {
		r.Severity = InferSeverity(r.Code(), r.ErrorMessage)
	}
	if r.Category == "" {
		r.Category = Categorize(r.Code())
	}
	if r.Frequency == "" {
		r.Frequency = EstimateFrequency(r.Code())
	}
	if len(r.Tags) == 0 {
		r.Tags = DeriveTags(r.Code(), r.Category)
	}

	return r
}

// NormalizeAll normalizes a collection in place order, without deduplicating;
// duplicate natural keys are collapsed later by Dedupe so the snapshot keeps
// the raw curated ordering.
func NormalizeAll(records []ErrorRecord, date string) []ErrorRecord {
	out := make([]ErrorRecord, 0, len(records))
	for _, r := range records {
		out = append(out, NormalizeAt(r, date))
	}
	return out
}
