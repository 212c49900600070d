package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer/rpc"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
)

const optimizePath = "/v1/optimize"

// Optimizer is the scheduling side's view of the optimizer service.
type Optimizer interface {
	OptimizeShifts(ctx context.Context, req *rpc.OptimizeShiftsRequest) (*rpc.OptimizeShiftsResponse, error)
}

// Client talks to the shift-optimizer service over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
}

func New(cfg config.OptimizerConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// OptimizeShifts sends one optimization snapshot and decodes the result. Any
// transport or protocol fault comes back as a dependency error; a response
// with success=false is returned as-is for the caller to interpret.
func (c *Client) OptimizeShifts(ctx context.Context, req *rpc.OptimizeShiftsRequest) (*rpc.OptimizeShiftsResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "encoding optimizer request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+optimizePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "building optimizer request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "calling optimizer service")
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.CodeDependency, fmt.Sprintf("optimizer service returned status %d", httpResp.StatusCode))
	}

	var resp rpc.OptimizeShiftsResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "decoding optimizer response")
	}
	return &resp, nil
}
