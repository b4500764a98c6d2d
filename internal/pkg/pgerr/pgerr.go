// Package pgerr maps driver and PostgreSQL failures onto the errs taxonomy.
package pgerr

import (
	"context"
	"errors"
	"slices"

	"zapshift/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the store reacts to.
const (
	UniqueViolation      = "23505" // unique_violation
	ForeignKeyViolation  = "23503" // foreign_key_violation
	CheckViolation       = "23514" // check_violation
	SerializationFailure = "40001" // serialization_failure
	DeadlockDetected     = "40P01" // deadlock_detected
	LockNotAvailable     = "55P03" // lock_not_available
	QueryCanceled        = "57014" // query_canceled
	AdminShutdown        = "57P01" // admin_shutdown
	CannotConnectNow     = "57P03" // cannot_connect_now
)

// Classify wraps err for the caller of operation op.
//
//   - timeouts, cancellations and connection failures become StoreUnavailable
//   - serialization failures and deadlocks become VersionIsInvalid so the
//     transaction is replayed like any other lost race
//   - constraint violations become ValueIsInvalid naming the constraint
//
// Anything else is returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return errs.NewStoreUnavailableError(op, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return errs.NewStoreUnavailableError(op, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == SerializationFailure, pgErr.Code == DeadlockDetected, pgErr.Code == LockNotAvailable:
		return errs.NewVersionIsInvalidErrorWithCause(op, err)
	case pgErr.Code == UniqueViolation, pgErr.Code == ForeignKeyViolation, pgErr.Code == CheckViolation:
		return errs.NewValueIsInvalidErrorWithCause(constraintName(pgErr), err)
	case pgErr.Code == QueryCanceled, pgErr.Code == AdminShutdown, pgErr.Code == CannotConnectNow,
		len(pgErr.Code) == 5 && pgErr.Code[:2] == "08":
		return errs.NewStoreUnavailableError(op, err)
	}
	return err
}

// ClassifyConflict is Classify, except that a unique violation of one of
// constraints becomes a VersionIsInvalidError. Use it for unique keys a
// concurrent writer can take first, where replaying the operation is the
// right answer and the caller's input was fine.
func ClassifyConflict(op string, err error, constraints ...string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && slices.Contains(constraints, pgErr.ConstraintName) {
		return errs.NewVersionIsInvalidErrorWithCause(op, err)
	}
	return Classify(op, err)
}

func constraintName(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.TableName
}
