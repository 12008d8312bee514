package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/roadnet-api/internal/platform/logger"
)

// TxFn is a function that executes within a database transaction.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunReadOnly executes fn inside a read-only transaction whose statements
// are cancelled by the server after timeout (no limit when timeout <= 0).
// The transaction is always rolled back: nothing it does needs committing.
func RunReadOnly(ctx context.Context, db *sql.DB, timeout time.Duration, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		log.Error("failed to begin read-only transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin: %v", ErrTransactionFailed, err)
	}

	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			log.Error("failed to roll back read-only transaction",
				slog.String("error", rbErr.Error()))
		}
	}()

	if timeout > 0 {
		// SET LOCAL does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", timeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: set statement timeout: %v", ErrTransactionFailed, err)
		}
	}

	return fn(ctx, tx)
}
