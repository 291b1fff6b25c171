package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work, such as the API requests of a network load.
type Telemetry interface {
	// Record starts a vertex with the given name.
	Record(ctx context.Context, name string) Vertex
	// Close flushes the recording session.
	Close() error
}

// Vertex is a unit of work started by Telemetry.
type Vertex interface {
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
