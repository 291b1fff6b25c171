package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hop/cmd/hop/commands"
	"go.trai.ch/hop/internal/build"
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/core/ports"
	"go.trai.ch/hop/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	listRoutesFunc func(ctx context.Context) ([]domain.Route, error)
	routeInfoFunc  func(ctx context.Context) (*domain.NetworkSummary, error)
	directionsFunc func(ctx context.Context, from, to string) ([]string, error)
}

func (m *mockApp) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	if m.listRoutesFunc != nil {
		return m.listRoutesFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) RouteInfo(ctx context.Context) (*domain.NetworkSummary, error) {
	if m.routeInfoFunc != nil {
		return m.routeInfoFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) Directions(ctx context.Context, from, to string) ([]string, error) {
	if m.directionsFunc != nil {
		return m.directionsFunc(ctx, from, to)
	}
	return nil, nil
}

func newNetworkApp() *mockApp {
	return &mockApp{
		listRoutesFunc: func(_ context.Context) ([]domain.Route, error) {
			return []domain.Route{
				{ID: "Red", Name: "Red Line"},
				{ID: "Orange", Name: "Orange Line"},
				{ID: "Blue", Name: "Blue Line"},
			}, nil
		},
		routeInfoFunc: func(_ context.Context) (*domain.NetworkSummary, error) {
			return &domain.NetworkSummary{
				MostStops:   domain.RouteStopCount{Route: "Orange Line", Count: 4},
				FewestStops: domain.RouteStopCount{Route: "Blue Line", Count: 3},
				Transfers: []domain.Transfer{
					{Stop: "Downtown Crossing", Routes: []string{"Red Line", "Orange Line"}},
					{Stop: "State", Routes: []string{"Orange Line", "Blue Line"}},
				},
			}, nil
		},
		directionsFunc: func(_ context.Context, from, to string) ([]string, error) {
			if from == "Alewife" && to == "Wonderland" {
				return []string{"Red Line", "Orange Line", "Blue Line"}, nil
			}
			if from == "Alewife" && to == "Ashmont" {
				return []string{"Red Line"}, nil
			}
			return nil, zerr.With(domain.ErrUnknownStop, "stop", to)
		},
	}
}

func execute(t *testing.T, a commands.Application, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeWithLogger(t, a, mocks.NewMockLogger(gomock.NewController(t)), stdin, args...)
}

func executeWithLogger(
	t *testing.T,
	a commands.Application,
	log ports.Logger,
	stdin string,
	args ...string,
) (string, string, error) {
	t.Helper()
	cli := commands.New(a, log)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetArgs(args)
	cli.SetInput(strings.NewReader(stdin))
	cli.SetOutput(stdout, stderr)

	err := cli.Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCommands_Routes(t *testing.T) {
	stdout, _, err := execute(t, newNetworkApp(), "", "routes")
	require.NoError(t, err)
	assert.Equal(t, "Red Line, Orange Line, Blue Line\n", stdout)
}

func TestCommands_RouteInfo(t *testing.T) {
	stdout, _, err := execute(t, newNetworkApp(), "", "route-info")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "route_info", []byte(stdout))
}

func TestCommands_Directions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "path",
			args: []string{"directions", "Alewife", "Wonderland"},
			want: "Red Line, Orange Line, Blue Line\n",
		},
		{
			name: "single route",
			args: []string{"directions", "Alewife", "Ashmont"},
			want: "Red Line\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, newNetworkApp(), "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	t.Run("unknown stop", func(t *testing.T) {
		_, _, err := execute(t, newNetworkApp(), "", "directions", "Alewife", "Hogwarts")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownStop.Error())
	})

	t.Run("app failure", func(t *testing.T) {
		a := &mockApp{
			listRoutesFunc: func(_ context.Context) ([]domain.Route, error) {
				return nil, errors.New("simulated error")
			},
		}
		_, _, err := execute(t, a, "", "routes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("directions needs two stops", func(t *testing.T) {
		_, _, err := execute(t, newNetworkApp(), "", "directions", "Alewife")
		require.Error(t, err)
	})

	t.Run("empty summary", func(t *testing.T) {
		_, _, err := execute(t, &mockApp{}, "", "route-info")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrEmptyNetwork.Error())
	})
}

func TestCommands_Shell(t *testing.T) {
	input := strings.Join([]string{
		"list_routes",
		"route_info",
		"directions from Alewife to Wonderland",
		"where am I",
		"exit",
		"list_routes",
	}, "\n") + "\n"

	stdout, stderr, err := execute(t, newNetworkApp(), input, "shell")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	g := goldie.New(t)
	g.Assert(t, "shell_session", []byte(stdout))
}

func TestCommands_Shell_EndOfInput(t *testing.T) {
	stdout, _, err := execute(t, newNetworkApp(), "directions from Alewife to Ashmont", "shell")
	require.NoError(t, err)
	assert.Equal(t, "ready> Red Line\nready> bye\n", stdout)
}

func TestCommands_Shell_ErrorsDoNotStopTheLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged []error
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		logged = append(logged, err)
	}).Times(2)

	input := "directions from Alewife to Hogwarts\ndirections Alewife Wonderland\ndirections from Alewife to Ashmont\nexit\n"

	stdout, stderr, err := executeWithLogger(t, newNetworkApp(), mockLogger, input, "shell")
	require.NoError(t, err)
	assert.Equal(t, "ready> ready> ready> Red Line\nready> bye\n", stdout)
	assert.Empty(t, stderr)

	require.Len(t, logged, 2)
	assert.ErrorContains(t, logged[0], domain.ErrUnknownStop.Error())
	assert.ErrorContains(t, logged[1], domain.ErrInvalidDirections.Error())

	zErr, ok := logged[1].(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", logged[1])
	assert.Equal(t, "directions Alewife Wonderland", zErr.Metadata()["input"])
}

func TestCommands_Version(t *testing.T) {
	stdout, _, err := execute(t, newNetworkApp(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hop version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", stdout)

	stdout, _, err = execute(t, newNetworkApp(), "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "hop version "+build.Version)
}
