// Package history records operations to the store, either inline or through
// a buffered background writer.
package history

import (
	"context"

	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/metrics"
	"github.com/joestump/cryptolab/internal/store"
)

// Recorder accepts operations for persistence.
type Recorder interface {
	Record(op store.Operation)
}

// Writer is the persistence side of a Recorder.
type Writer interface {
	Record(ctx context.Context, op store.Operation) (*store.Operation, error)
}

// SyncRecorder writes each operation before Record returns.
type SyncRecorder struct {
	w   Writer
	log *zap.Logger
}

// NewSyncRecorder creates a SyncRecorder.
func NewSyncRecorder(w Writer, log *zap.Logger) *SyncRecorder {
	return &SyncRecorder{w: w, log: log}
}

func (r *SyncRecorder) Record(op store.Operation) {
	write(context.Background(), r.w, r.log, op)
}

// AsyncRecorder queues operations on a buffered channel; Run drains it.
// Record never blocks: when the queue is full the operation is dropped and
// counted.
type AsyncRecorder struct {
	ch  chan store.Operation
	w   Writer
	log *zap.Logger
}

// NewAsyncRecorder creates an AsyncRecorder with room for buffer queued operations.
func NewAsyncRecorder(w Writer, buffer int, log *zap.Logger) *AsyncRecorder {
	return &AsyncRecorder{ch: make(chan store.Operation, buffer), w: w, log: log}
}

func (r *AsyncRecorder) Record(op store.Operation) {
	select {
	case r.ch <- op:
	default:
		metrics.HistoryDroppedTotal.Inc()
		r.log.Warn("history queue full, dropping operation",
			zap.String("algorithm", op.Algorithm), zap.String("action", op.Action))
	}
}

// Run writes queued operations until ctx is cancelled, then drains whatever
// is still buffered before returning.
func (r *AsyncRecorder) Run(ctx context.Context) {
	for {
		select {
		case op := <-r.ch:
			write(context.WithoutCancel(ctx), r.w, r.log, op)
		case <-ctx.Done():
			for {
				select {
				case op := <-r.ch:
					write(context.Background(), r.w, r.log, op)
				default:
					return
				}
			}
		}
	}
}

func write(ctx context.Context, w Writer, log *zap.Logger, op store.Operation) {
	if _, err := w.Record(ctx, op); err != nil {
		metrics.HistoryRecordErrorsTotal.Inc()
		log.Error("history write failed", zap.Error(err), zap.String("algorithm", op.Algorithm))
		return
	}
	metrics.HistoryRecordedTotal.Inc()
}
