package telemetry

import (
	"fmt"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/hop/internal/core/ports"
)

// logWriter logs every vertex once it completes.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) WriteStatus(status *progrock.StatusUpdate) error {
	for _, v := range status.Vertexes {
		if v.Completed == nil {
			continue
		}

		var took time.Duration
		if v.Started != nil {
			took = v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
		}

		if v.Error != nil {
			w.logger.Warn(fmt.Sprintf("%s failed after %s: %s", v.Name, took, *v.Error))
			continue
		}
		w.logger.Debug(fmt.Sprintf("%s done in %s", v.Name, took))
	}
	return nil
}

func (w *logWriter) Close() error {
	return nil
}
