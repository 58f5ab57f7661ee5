package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// beginner starts transactions; *pgxpool.Pool, pgx.Tx and pgxmock pools satisfy it.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager runs callbacks inside a transaction carried in the context.
type TxManager struct {
	db beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a transaction at Read Committed.
// A call made from inside another RunInTx callback runs under a savepoint of
// the outer transaction: its error rolls back only its own work and the
// outer transaction decides the final commit.
// On error from fn the transaction (or savepoint) is rolled back and the
// error returned. On panic it is rolled back and the panic re-raised.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	var starter beginner = m.db
	nested := false
	if outer, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		starter, nested = outer, true
	}

	tx, err := starter.Begin(ctx)
	if err != nil {
		if nested {
			return fmt.Errorf("create savepoint: %w", err)
		}
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if nested {
			return fmt.Errorf("release savepoint: %w", err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
