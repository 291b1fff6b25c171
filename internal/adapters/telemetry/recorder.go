// Package telemetry records network loads with progrock.
package telemetry

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/hop/internal/core/ports"
)

// Recorder implements ports.Telemetry on a progrock recording session.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder reporting finished vertices to log.
func New(log ports.Logger) *Recorder {
	return NewRecorder(&logWriter{logger: log})
}

// NewRecorder creates a Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named name.
func (r *Recorder) Record(_ context.Context, name string) ports.Vertex {
	return &vertex{rec: r.rec.Vertex(digest.FromString(name), name)}
}

// Close closes the underlying writer.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

type vertex struct {
	rec *progrock.VertexRecorder
}

func (v *vertex) Complete(err error) {
	v.rec.Done(err)
}

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// Record returns a vertex that ignores completion.
func (NoOp) Record(context.Context, string) ports.Vertex { return noopVertex{} }

// Close does nothing.
func (NoOp) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Complete(error) {}
