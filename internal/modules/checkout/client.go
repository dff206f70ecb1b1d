package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rienbien8/pos-frontend/internal/shared/apperr"
)

// Submitter sends a finalized purchase to the checkout service.
type Submitter interface {
	Submit(ctx context.Context, req PurchaseRequest) (PurchaseResponse, error)
}

// Client is the HTTP Submitter against the real purchase endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Submit(ctx context.Context, req PurchaseRequest) (PurchaseResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return PurchaseResponse{}, apperr.Wrap(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/purchase", bytes.NewReader(body))
	if err != nil {
		return PurchaseResponse{}, apperr.Wrap(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return PurchaseResponse{}, apperr.UnreachableErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return PurchaseResponse{}, apperr.BadGatewayErr(resp.StatusCode, fmt.Errorf("purchase: status %d", resp.StatusCode))
	}

	var pr PurchaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		// 2xx with an unreadable body: treated as a degraded response by
		// the orchestrator, same as a missing total_amount
		return PurchaseResponse{}, apperr.BadGatewayErr(resp.StatusCode, fmt.Errorf("purchase: decode: %w", err))
	}
	return pr, nil
}
