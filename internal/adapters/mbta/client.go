// Package mbta implements the TransitSource port over the MBTA v3 API.
package mbta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TransitSource = (*Client)(nil)

// Client fetches routes and stops from the MBTA v3 API.
// Successful responses are kept in memory for the lifetime of the Client.
type Client struct {
	baseURL    string
	apiKey     string
	routeTypes []int
	retries    int
	httpClient *http.Client
	logger     ports.Logger
	newBackOff func() backoff.BackOff

	mu    sync.RWMutex
	cache map[uint64][]byte
}

// NewClient creates a Client configured from settings.
func NewClient(settings domain.Settings, log ports.Logger) *Client {
	return newClient(settings, log, &http.Client{Timeout: settings.Timeout})
}

func newClient(settings domain.Settings, log ports.Logger, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(settings.APIBaseURL, "/"),
		apiKey:     settings.APIKey,
		routeTypes: settings.RouteTypes,
		retries:    settings.Retries,
		httpClient: httpClient,
		logger:     log,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		cache:      make(map[uint64][]byte),
	}
}

// FetchSubwayRoutes returns the routes of the configured route types, in API order.
// A route is named by its long name, falling back to its ID.
func (c *Client) FetchSubwayRoutes(ctx context.Context) ([]domain.Route, error) {
	types := make([]string, 0, len(c.routeTypes))
	for _, t := range c.routeTypes {
		types = append(types, strconv.Itoa(t))
	}

	doc, err := c.get(ctx, fmt.Sprintf("%s/routes?filter[type]=%s", c.baseURL, strings.Join(types, ",")))
	if err != nil {
		return nil, err
	}

	routes := make([]domain.Route, 0, len(doc.Data))
	for _, r := range doc.Data {
		name := r.Attributes.LongName
		if name == "" {
			name = r.ID
		}
		routes = append(routes, domain.Route{ID: r.ID, Name: name})
	}
	return routes, nil
}

// FetchStopsForRoute returns the stops served by routeID, in API order.
func (c *Client) FetchStopsForRoute(ctx context.Context, routeID string) ([]domain.Stop, error) {
	doc, err := c.get(ctx, fmt.Sprintf("%s/stops?filter[route]=%s", c.baseURL, url.QueryEscape(routeID)))
	if err != nil {
		return nil, zerr.With(err, "route_id", routeID)
	}

	stops := make([]domain.Stop, 0, len(doc.Data))
	for _, s := range doc.Data {
		stops = append(stops, domain.Stop{ID: s.ID, Name: s.Attributes.Name})
	}
	return stops, nil
}

// get returns the decoded document at target, serving repeated requests from memory.
func (c *Client) get(ctx context.Context, target string) (*document, error) {
	key := xxhash.Sum64String(target)

	c.mu.RLock()
	body, hit := c.cache[key]
	c.mu.RUnlock()

	if !hit {
		var err error
		body, err = c.fetchWithRetry(ctx, target)
		if err != nil {
			return nil, err
		}
	}

	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransitParseFailed.Error()), "url", target)
	}

	if !hit {
		c.mu.Lock()
		c.cache[key] = body
		c.mu.Unlock()
	}

	return &doc, nil
}

// fetchWithRetry retries transport failures, 429 and 5xx responses.
// Other responses fail immediately.
func (c *Client) fetchWithRetry(ctx context.Context, target string) ([]byte, error) {
	var body []byte
	attempt := 0

	op := func() error {
		attempt++
		b, err := c.fetch(ctx, target)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	notify := func(err error, _ time.Duration) {
		c.logger.Debug(fmt.Sprintf("retrying %s after attempt %d: %v", target, attempt, err))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(max(c.retries, 0))), ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, backoff.Permanent(zerr.With(zerr.Wrap(err, domain.ErrTransitRequestFailed.Error()), "url", target))
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransitRequestFailed.Error()), "url", target)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrTransitRequestFailed, "status_code", resp.StatusCode)
		apiErr = zerr.With(apiErr, "url", target)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, apiErr
		}
		return nil, backoff.Permanent(apiErr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransitRequestFailed.Error()), "url", target)
	}
	return body, nil
}
