// Package helix is the boundary to the remote graph store holding the
// ingested error patterns. The Store port keeps callers independent of the
// wire protocol; Client speaks the HTTP API and Memory is a test double.
package helix

import "context"

// API is a registered source API node.
type API struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	Version string `json:"version"`
	DocsURL string `json:"docs_url"`
}

// ErrorPattern is one stored error node.
type ErrorPattern struct {
	ID          string `json:"id"`
	APIID       string `json:"api_id"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
	Resource    string `json:"resource"`
	Method      string `json:"method"`
	HTTPStatus  int    `json:"http_status"`
	Severity    string `json:"severity"`
}

// Solution is a suggested fix attached to an error node.
type Solution struct {
	ID          string `json:"id"`
	ErrorID     string `json:"error_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CodeExample string `json:"code_example"`
	SourceURL   string `json:"source_url"`
	Upvotes     int    `json:"upvotes"`
}

// Parameter is a request field implicated in an error.
type Parameter struct {
	ID          string `json:"id"`
	ErrorID     string `json:"error_id"`
	Name        string `json:"name"`
	ParamType   string `json:"param_type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// CreateAPIRequest registers (or re-registers) a source API.
type CreateAPIRequest struct {
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	Version string `json:"version"`
	DocsURL string `json:"docs_url"`
}

// CreateErrorPatternRequest adds an error node under an API.
type CreateErrorPatternRequest struct {
	APIID       string `json:"api_id"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
	Resource    string `json:"resource"`
	Method      string `json:"method"`
	HTTPStatus  int    `json:"http_status"`
	Severity    string `json:"severity"`
}

// CreateSolutionRequest attaches a solution to an error node.
type CreateSolutionRequest struct {
	ErrorID     string `json:"error_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CodeExample string `json:"code_example"`
	SourceURL   string `json:"source_url"`
	Upvotes     int    `json:"upvotes"`
}

// CreateParameterRequest attaches an implicated parameter to an error node.
type CreateParameterRequest struct {
	ErrorID     string `json:"error_id"`
	Name        string `json:"name"`
	ParamType   string `json:"param_type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Store is the abstract port to the remote error-pattern store. Any failure
// surfaces as a typed error at the call site; the port itself defines no
// retry policy.
type Store interface {
	CreateAPI(ctx context.Context, req CreateAPIRequest) (API, error)
	CreateErrorPattern(ctx context.Context, req CreateErrorPatternRequest) (ErrorPattern, error)
	CreateSolution(ctx context.Context, req CreateSolutionRequest) (Solution, error)
	CreateParameter(ctx context.Context, req CreateParameterRequest) (Parameter, error)
	GetAPIErrors(ctx context.Context, apiName string) ([]ErrorPattern, error)
	FindSolutionsByErrorCode(ctx context.Context, errorCode string) (ErrorPattern, []Solution, error)
}
