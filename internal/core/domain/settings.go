package domain

import "time"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "hop.yaml"

	// DefaultAPIBaseURL is the MBTA v3 API endpoint.
	DefaultAPIBaseURL = "https://api-v3.mbta.com"

	// DefaultTimeout bounds a single transit API request.
	DefaultTimeout = 30 * time.Second

	// DefaultRetries is the number of retries after a failed transit API request.
	DefaultRetries = 3

	// DefaultConcurrency is the number of stop listings fetched in parallel.
	DefaultConcurrency = 4
)

// DefaultRouteTypes selects light rail (0) and heavy rail (1) routes.
var DefaultRouteTypes = []int{0, 1}

// Settings holds the runtime configuration of hop.
type Settings struct {
	APIBaseURL  string
	APIKey      string
	RouteTypes  []int
	Timeout     time.Duration
	Retries     int
	Concurrency int
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		APIBaseURL:  DefaultAPIBaseURL,
		RouteTypes:  append([]int(nil), DefaultRouteTypes...),
		Timeout:     DefaultTimeout,
		Retries:     DefaultRetries,
		Concurrency: DefaultConcurrency,
	}
}
