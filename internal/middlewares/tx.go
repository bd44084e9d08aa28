package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/linkvault/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The response is
// buffered: a status below 400 commits, anything else rolls back, and a failed
// commit replaces the response with a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			buf := &bufferedWriter{header: http.Header{}, status: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(setTxToContext(r.Context(), tx)))

			if buf.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			buf.flush(w)
		})
	}
}

type bufferedWriter struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.status = code
	b.wroteHeader = true
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.wroteHeader = true
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}

type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
