package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hop/internal/core/domain"
)

func TestSummarize(t *testing.T) {
	s := domain.Summarize(threeLines())
	require.NotNil(t, s)

	assert.Equal(t, domain.RouteStopCount{Route: "Orange", Count: 4}, s.MostStops)
	assert.Equal(t, domain.RouteStopCount{Route: "Red", Count: 3}, s.FewestStops)
	assert.Equal(t, []domain.Transfer{
		{Stop: "Downtown Crossing", Routes: []string{"Red", "Orange"}},
		{Stop: "State", Routes: []string{"Orange", "Blue"}},
	}, s.Transfers)
}

func TestSummarize_FewestAfterMost(t *testing.T) {
	// The minimum must be tracked on its own, even once a larger route was seen.
	idx := buildIndex(
		line{"Red", []string{"a", "b", "c"}},
		line{"Orange", []string{"d", "e", "f", "g"}},
		line{"Mattapan", []string{"h", "i"}},
		line{"Blue", []string{"j", "k", "l"}},
	)
	s := domain.Summarize(idx)
	require.NotNil(t, s)

	assert.Equal(t, "Orange", s.MostStops.Route)
	assert.Equal(t, domain.RouteStopCount{Route: "Mattapan", Count: 2}, s.FewestStops)
	assert.Empty(t, s.Transfers)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Nil(t, domain.Summarize(domain.NewStopRouteIndex()))
}
