package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultRequestTimeout = 10 * time.Second

// Client fetches the four aggregate endpoints of a running dashboard API and
// reshapes them into chart-ready view state. All four requests run
// concurrently; if any of them fails the whole fetch fails with one
// consolidated error instead of leaving a chart silently empty.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: defaultRequestTimeout,
	}
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// FetchOverview collects the raw rows of all four aggregate endpoints.
func (c *Client) FetchOverview(ctx context.Context) (*Overview, error) {
	var ov Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(ctx, "/api/monthly-sales", &ov.MonthlySales)
	})
	g.Go(func() error {
		return c.getJSON(ctx, "/api/product-sales", &ov.ProductSales)
	})
	g.Go(func() error {
		return c.getJSON(ctx, "/api/customer-gender", &ov.CustomerGender)
	})
	g.Go(func() error {
		return c.getJSON(ctx, "/api/payment-methods", &ov.PaymentMethods)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch overview: %w", err)
	}
	return &ov, nil
}

// FetchDashboard fetches the overview and reshapes it into chart series plus
// insights in one call.
func (c *Client) FetchDashboard(ctx context.Context) (*Dashboard, error) {
	ov, err := c.FetchOverview(ctx)
	if err != nil {
		return nil, err
	}
	return Build(ov), nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
