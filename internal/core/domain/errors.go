package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownStop is returned when a stop name has no entry in the stop index.
	ErrUnknownStop = zerr.New("invalid stop, pass in a valid stop name")

	// ErrUnreachableRoutePair is returned when no chain of transfers connects two routes.
	ErrUnreachableRoutePair = zerr.New("no connection between routes")

	// ErrInvalidDirections is returned when a directions query is not of the form "from X to Y".
	ErrInvalidDirections = zerr.New("invalid directions, expected: directions from <stop> to <stop>")

	// ErrEmptyNetwork is returned when the transit source lists no routes.
	ErrEmptyNetwork = zerr.New("transit source returned no routes")

	// ErrTransitRequestFailed is returned when a request to the transit API fails.
	ErrTransitRequestFailed = zerr.New("failed to make transit API request")

	// ErrTransitParseFailed is returned when a transit API response cannot be decoded.
	ErrTransitParseFailed = zerr.New("failed to parse transit API response")

	// ErrNetworkLoadFailed is returned when the route network cannot be assembled.
	ErrNetworkLoadFailed = zerr.New("failed to load route network")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")
)
