package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// StateRepo хранит состояние в таблице state_entries, значение - JSONB.
type StateRepo struct {
	pool *pgxpool.Pool
}

func NewStateRepo(pool *pgxpool.Pool) *StateRepo {
	return &StateRepo{
		pool: pool,
	}
}

func (s *StateRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM state_entries WHERE key = $1`

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		return nil, getError(err)
	}

	return value, nil
}

// getError переводит pgx.ErrNoRows (строки нет) в e.ErrStateNotFound.
func getError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return e.Wrap(whereami.WhereAmI(), e.ErrStateNotFound)
	}
	return e.Wrap(whereami.WhereAmI(), err)
}

// Put заменяет значение ключа в отдельной транзакции.
func (s *StateRepo) Put(ctx context.Context, key string, value []byte) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.pool)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return e.Wrap(whereami.WhereAmI(), e.ErrTransactionNotFound)
	}

	if err = s.upsert(tr.WithTx(ctx, pgxTx), key, value); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *StateRepo) upsert(ctx context.Context, key string, value []byte) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO state_entries (key, value)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`

	_, err = tx.Exec(ctx, query, key, string(value))
	return err
}
