package helix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
	"github.com/errata-labs/errata-go/pkg/utils"
)

// Client speaks the store's HTTP API: one JSON POST per operation, e.g.
// POST {base}/createErrorPattern. The base URL is injected; there is no
// default endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger, opts ...utils.ClientOption) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    utils.NewHTTPClient(opts...),
		logger:  logger,
	}
}

func (c *Client) CreateAPI(ctx context.Context, req CreateAPIRequest) (API, error) {
	var out struct {
		API API `json:"api"`
	}
	if err := c.post(ctx, "createAPI", req, &out); err != nil {
		return API{}, err
	}
	return out.API, nil
}

func (c *Client) CreateErrorPattern(ctx context.Context, req CreateErrorPatternRequest) (ErrorPattern, error) {
	var out struct {
		Error ErrorPattern `json:"error"`
	}
	if err := c.post(ctx, "createErrorPattern", req, &out); err != nil {
		return ErrorPattern{}, err
	}
	return out.Error, nil
}

func (c *Client) CreateSolution(ctx context.Context, req CreateSolutionRequest) (Solution, error) {
	var out struct {
		Solution Solution `json:"solution"`
	}
	if err := c.post(ctx, "createSolution", req, &out); err != nil {
		return Solution{}, err
	}
	return out.Solution, nil
}

func (c *Client) CreateParameter(ctx context.Context, req CreateParameterRequest) (Parameter, error) {
	var out struct {
		Parameter Parameter `json:"parameter"`
	}
	if err := c.post(ctx, "createParameter", req, &out); err != nil {
		return Parameter{}, err
	}
	return out.Parameter, nil
}

func (c *Client) GetAPIErrors(ctx context.Context, apiName string) ([]ErrorPattern, error) {
	in := map[string]string{"api_name": apiName}
	var out struct {
		Errors []ErrorPattern `json:"errors"`
	}
	if err := c.post(ctx, "getAPIErrors", in, &out); err != nil {
		return nil, err
	}
	return out.Errors, nil
}

func (c *Client) FindSolutionsByErrorCode(ctx context.Context, errorCode string) (ErrorPattern, []Solution, error) {
	in := map[string]string{"error_code": errorCode}
	var out struct {
		Errors    *ErrorPattern `json:"errors"`
		Solutions []Solution    `json:"solutions"`
	}
	if err := c.post(ctx, "findSolutionsByErrorCode", in, &out); err != nil {
		return ErrorPattern{}, nil, err
	}
	if out.Errors == nil {
		return ErrorPattern{}, nil, pkg.NewAppError(pkg.ErrRecordNotFoundCode,
			"no error pattern with code "+errorCode, pkg.ErrRecordNotFound)
	}
	return *out.Errors, out.Solutions, nil
}

// post runs one request/response round trip. Transport failures and
// non-success statuses both surface as upstream-unavailable; callers decide
// how to degrade.
func (c *Client) post(ctx context.Context, op string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return pkg.NewAppError(pkg.ErrServerCode, "encode "+op+" request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, bytes.NewReader(body))
	if err != nil {
		return pkg.NewAppError(pkg.ErrServerCode, "build "+op+" request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("store request failed", zap.String("op", op), zap.Error(err))
		return pkg.NewAppError(pkg.ErrUpstreamCode, pkg.ErrUpstreamCode.Message, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("store returned non-success",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return pkg.NewAppError(pkg.ErrUpstreamCode,
			fmt.Sprintf("store %s returned status %d", op, resp.StatusCode), pkg.ErrStoreUnreadable)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkg.NewAppError(pkg.ErrUpstreamCode, "decode "+op+" response", err)
	}
	return nil
}
