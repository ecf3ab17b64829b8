package repository

import (
	"context"
	"log/slog"

	"resort-booking/internal/infra/datastore"
	"resort-booking/internal/pkg/errs"
)

// lookupStrategy is one candidate schema shape for the same logical read.
type lookupStrategy struct {
	name  string
	query func() *datastore.Query
}

// firstSuccessful runs strategies in order and returns the rows of the first
// one that does not error, even when it matched nothing. ok is false when
// every strategy failed. A missing datastore configuration is returned as an
// error instead of being treated as a schema mismatch.
func firstSuccessful(
	ctx context.Context,
	client datastore.Client,
	logger *slog.Logger,
	strategies []lookupStrategy,
) (rows []datastore.Row, ok bool, err error) {
	for _, s := range strategies {
		rows, err := client.Select(ctx, s.query())
		if err == nil {
			return rows, true, nil
		}
		if errs.Is(err, errs.ErrNotConfigured) {
			return nil, false, err
		}
		logger.Debug("lookup strategy failed",
			slog.String("strategy", s.name),
			slog.String("error", errs.RootMessage(err)))
	}
	return nil, false, nil
}
