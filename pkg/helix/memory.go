package helix

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/errata-labs/errata-go/pkg"
)

// Memory is an in-memory Store used in tests and local development. CreateAPI
// is idempotent on name, matching the remote store's upsert behavior.
type Memory struct {
	mu         sync.Mutex
	apis       []API
	errors     []ErrorPattern
	solutions  []Solution
	parameters []Parameter
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) CreateAPI(_ context.Context, req CreateAPIRequest) (API, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.apis {
		if a.Name == req.Name {
			return a, nil
		}
	}
	api := API{
		ID:      uuid.New().String(),
		Name:    req.Name,
		BaseURL: req.BaseURL,
		Version: req.Version,
		DocsURL: req.DocsURL,
	}
	m.apis = append(m.apis, api)
	return api, nil
}

func (m *Memory) CreateErrorPattern(_ context.Context, req CreateErrorPatternRequest) (ErrorPattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := ErrorPattern{
		ID:          uuid.New().String(),
		APIID:       req.APIID,
		Code:        req.Code,
		Message:     req.Message,
		Description: req.Description,
		Resource:    req.Resource,
		Method:      req.Method,
		HTTPStatus:  req.HTTPStatus,
		Severity:    req.Severity,
	}
	m.errors = append(m.errors, e)
	return e, nil
}

func (m *Memory) CreateSolution(_ context.Context, req CreateSolutionRequest) (Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Solution{
		ID:          uuid.New().String(),
		ErrorID:     req.ErrorID,
		Title:       req.Title,
		Description: req.Description,
		CodeExample: req.CodeExample,
		SourceURL:   req.SourceURL,
		Upvotes:     req.Upvotes,
	}
	m.solutions = append(m.solutions, s)
	return s, nil
}

func (m *Memory) CreateParameter(_ context.Context, req CreateParameterRequest) (Parameter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := Parameter{
		ID:          uuid.New().String(),
		ErrorID:     req.ErrorID,
		Name:        req.Name,
		ParamType:   req.ParamType,
		Required:    req.Required,
		Description: req.Description,
		Example:     req.Example,
	}
	m.parameters = append(m.parameters, p)
	return p, nil
}

func (m *Memory) GetAPIErrors(_ context.Context, apiName string) ([]ErrorPattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var apiID string
	for _, a := range m.apis {
		if a.Name == apiName {
			apiID = a.ID
			break
		}
	}
	if apiID == "" {
		return nil, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "no API named "+apiName, pkg.ErrRecordNotFound)
	}
	var out []ErrorPattern
	for _, e := range m.errors {
		if e.APIID == apiID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Memory) FindSolutionsByErrorCode(_ context.Context, errorCode string) (ErrorPattern, []Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.errors {
		if e.Code != errorCode {
			continue
		}
		var sols []Solution
		for _, s := range m.solutions {
			if s.ErrorID == e.ID {
				sols = append(sols, s)
			}
		}
		return e, sols, nil
	}
	return ErrorPattern{}, nil, pkg.NewAppError(pkg.ErrRecordNotFoundCode,
		"no error pattern with code "+errorCode, pkg.ErrRecordNotFound)
}

// Parameters returns the stored parameters for an error node, for assertions
// in tests.
func (m *Memory) Parameters(errorID string) []Parameter {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Parameter
	for _, p := range m.parameters {
		if p.ErrorID == errorID {
			out = append(out, p)
		}
	}
	return out
}
