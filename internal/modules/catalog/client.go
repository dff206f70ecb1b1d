package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rienbien8/pos-frontend/internal/shared/apperr"
)

// Client looks up products in the catalog service. Every call is a fresh
// round-trip; results are never cached.
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

// Lookup resolves a product code against the catalog service.
// The code is trimmed first; a blank code is rejected without a request.
func (c *Client) Lookup(ctx context.Context, code string) (Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Product{}, ErrBlankCode
	}

	u := c.baseURL + "/product/" + url.PathEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Product{}, apperr.Wrap(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Product{}, apperr.UnreachableErr(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Product{}, apperr.NotFoundErr(MsgNotRegistered)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return Product{}, apperr.BadGatewayErr(resp.StatusCode, fmt.Errorf("catalog lookup %s: status %d", code, resp.StatusCode))
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		// 2xx with an unreadable body counts as a broken upstream
		return Product{}, apperr.BadGatewayErr(resp.StatusCode, fmt.Errorf("catalog lookup %s: decode: %w", code, err))
	}
	return p, nil
}
