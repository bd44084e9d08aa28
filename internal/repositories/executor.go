package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/linkvault/internal/logger"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the context transaction when there is one, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
