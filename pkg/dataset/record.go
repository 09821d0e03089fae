// Package dataset holds the Errata error-pattern pipeline: the curated seed
// set, the normalization and classification rules, the immutable JSON
// snapshot, and the search engine that serves it.
package dataset

import (
	"fmt"
	"strings"
)

// APIName identifies the source API of a record.
type APIName string

const (
	APIStripe APIName = "Stripe"
	APIGitHub APIName = "GitHub"
)

// Stripe error types carried by the public error object.
const (
	TypeInvalidRequest = "invalid_request_error"
	TypeCard           = "card_error"
	TypeAPI            = "api_error"
	TypeAuthentication = "authentication_error"
	TypeRateLimit      = "rate_limit_error"
)

// Severity is the canonical urgency vocabulary used for filtering and display.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
)

// PipelineSeverity is the vocabulary used by the curated seed rows. The two
// vocabularies were never reconciled upstream; Canonical is the explicit
// mapping, keyed off the upvote weighting which assigns identical weights to
// the paired values (blocking/critical=10, config/error=7, transient/warning=5).
type PipelineSeverity string

const (
	PipelineBlocking  PipelineSeverity = "blocking"
	PipelineTransient PipelineSeverity = "transient"
	PipelineConfig    PipelineSeverity = "config"
)

// Canonical converts a pipeline severity to the canonical vocabulary.
func (p PipelineSeverity) Canonical() Severity {
	switch p {
	case PipelineBlocking:
		return SeverityCritical
	case PipelineTransient:
		return SeverityWarning
	case PipelineConfig:
		return SeverityError
	default:
		return SeverityError
	}
}

// Fallback display values for malformed records. Records missing fields are
// never dropped; consumers substitute these instead.
const (
	FallbackDescription = "No description available"
	fallbackSolutionFmt = "Check %s documentation for solutions"
)

// ErrorRecord is the canonical normalized representation of one documented
// API error pattern and its suggested fix.
type ErrorRecord struct {
	API                 APIName  `json:"api" validate:"required"`
	Resource            string   `json:"resource"`
	Method              string   `json:"method,omitempty"`
	ErrorType           string   `json:"error_type"`
	ErrorCode           string   `json:"error_code,omitempty"`
	HTTPStatus          int      `json:"http_status,omitempty"`
	DeclineCode         string   `json:"decline_code,omitempty"`
	ErrorMessage        string   `json:"error_message" validate:"required"`
	SolutionTitle       string   `json:"solution_title"`
	SolutionDescription string   `json:"solution_description"`
	ReproduceInTestMode string   `json:"reproduce_in_test_mode,omitempty"`
	ParamsImplicated    []string `json:"params_implicated,omitempty"`
	Severity            Severity `json:"severity"`
	SourceURL           string   `json:"source_url"`
	LastVerified        string   `json:"last_verified"`
	Category            string   `json:"category"`
	Tags                []string `json:"tags,omitempty"`
	Frequency           string   `json:"frequency,omitempty"`
}

// Code returns the natural key of the record: the fine-grained error_code
// when present, the error_type otherwise.
func (r ErrorRecord) Code() string {
	if r.ErrorCode != "" {
		return r.ErrorCode
	}
	return r.ErrorType
}

// Description is the store-facing description line: "<error_type>: <message>".
func (r ErrorRecord) Description() string {
	if r.ErrorType == "" {
		return r.ErrorMessage
	}
	return r.ErrorType + ": " + r.ErrorMessage
}

// DisplayDescription degrades to a documented fallback for malformed records.
func (r ErrorRecord) DisplayDescription() string {
	if strings.TrimSpace(r.ErrorMessage) == "" {
		return FallbackDescription
	}
	return r.ErrorMessage
}

// DisplaySolution degrades to a documented fallback for malformed records.
func (r ErrorRecord) DisplaySolution() string {
	if strings.TrimSpace(r.SolutionDescription) == "" {
		return fmt.Sprintf(fallbackSolutionFmt, r.API)
	}
	return r.SolutionDescription
}
