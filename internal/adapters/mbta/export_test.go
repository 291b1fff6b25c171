package mbta

import (
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/core/ports"
)

// NewClientWithHTTP creates a Client over the given http.Client that retries without delay.
func NewClientWithHTTP(settings domain.Settings, log ports.Logger, httpClient *http.Client) *Client {
	c := newClient(settings, log, httpClient)
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return c
}
