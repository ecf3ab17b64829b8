package infra

import (
	"errors"
	"log/slog"

	"resort-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err, logs it once and wraps it with msg. The
// original error stays reachable through errors.Is/As.
func WrapRepoErr(slogger *slog.Logger, msg string, err error) error {
	kind := Classify(err)

	slogger.Error("Repository error: "+msg,
		slog.String("kind", string(kind)),
		slog.String("cause", errs.RootMessage(err)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func Classify(err error) RepositoryErrorKind {
	if errs.Is(err, errs.ErrNotConfigured) {
		return KindNotConfigured
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindDuplicateKey
		case "23503":
			return KindForeignKeyViolated
		case "42P01", "42703":
			return KindSchemaMismatch
		}
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotConfigured      RepositoryErrorKind = "NOT_CONFIGURED"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindSchemaMismatch     RepositoryErrorKind = "SCHEMA_MISMATCH"
)
