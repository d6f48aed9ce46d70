package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/league-season/internal/platform/resilience"
)

const pqUniqueViolation = "23505"

// store is the shared handle of every repository. Calls go through the
// breaker so a failing database is reported as unavailable instead of piling
// up timeouts.
type store struct {
	db      *sqlx.DB
	breaker *resilience.CircuitBreaker
}

func newStore(db *sqlx.DB, breaker *resilience.CircuitBreaker) store {
	return store{db: db, breaker: breaker}
}

func (s store) do(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.breaker.Do(ctx, func(ctx context.Context) error {
		err := fn(ctx)
		if isNotFound(err) {
			// a missing row is an answer, not a database failure
			return nil
		}
		return err
	})
}

// get runs a single row query and reports whether a row was found.
func (s store) get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	found := true
	err := s.do(ctx, func(ctx context.Context) error {
		err := s.db.GetContext(ctx, dest, query, args...)
		if isNotFound(err) {
			found = false
		}
		return err
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (s store) selectRows(ctx context.Context, dest any, query string, args ...any) error {
	return s.do(ctx, func(ctx context.Context) error {
		return s.db.SelectContext(ctx, dest, query, args...)
	})
}

func (s store) exec(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := s.do(ctx, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

// tx runs fn inside a transaction that is rolled back unless fn succeeds.
func (s store) tx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	return s.do(ctx, func(ctx context.Context) error {
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return errors.Wrap(err, "begin tx")
		}
		defer func() {
			_ = tx.Rollback()
		}()

		if err := fn(ctx, tx); err != nil {
			return err
		}
		return errors.Wrap(tx.Commit(), "commit tx")
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
