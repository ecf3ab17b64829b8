package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/pkg/errs"
)

// SideWriter copies submissions into the legacy booking_requests shape off
// the request path. A write gets its own deadline, outlives the request and
// only ever logs failures.
type SideWriter struct {
	repo    LegacyRequestRepository
	timeout time.Duration
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func NewSideWriter(repo LegacyRequestRepository, timeout time.Duration, logger *slog.Logger) *SideWriter {
	return &SideWriter{repo: repo, timeout: timeout, logger: logger}
}

func (w *SideWriter) Write(ctx context.Context, req booking.LegacyRequest) {
	sideCtx := context.WithoutCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		writeCtx := sideCtx
		if w.timeout > 0 {
			var cancel context.CancelFunc
			writeCtx, cancel = context.WithTimeout(sideCtx, w.timeout)
			defer cancel()
		}
		if err := w.repo.Create(writeCtx, req); err != nil {
			w.logger.Warn("legacy booking request write failed",
				slog.String("type", req.Type),
				slog.String("error", errs.RootMessage(err)))
		}
	}()
}

// Wait blocks until every started write has finished or ctx ends.
func (w *SideWriter) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
