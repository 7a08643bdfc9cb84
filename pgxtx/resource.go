package pgxtx

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smarty/transactional"
)

type resource struct {
	config configuration
	logger logger
}

func newResource(config configuration) transactional.Resource {
	return &resource{config: config, logger: config.Logger}
}

func (this *resource) Begin(ctx context.Context, settings transactional.Settings) (transactional.Transaction, error) {
	applied := this.settings(settings)
	transaction, err := this.config.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   applied.IsolationLevel,
		AccessMode: applied.AccessMode,
	})
	if err != nil {
		this.logger.Printf("[WARN] Unable to begin transaction [%s].", err)
		return nil, err
	}

	if applied.StatementTimeout > 0 {
		statement := fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", applied.StatementTimeout.Milliseconds())
		if _, err = transaction.Exec(ctx, statement); err != nil {
			this.logger.Printf("[WARN] Unable to apply statement timeout [%s].", err)
			_ = transaction.Rollback(ctx)
			return nil, err
		}
	}

	return transaction, nil
}
func (this *resource) settings(settings transactional.Settings) Settings {
	if value, ok := settings.(Settings); ok {
		return value
	}
	return Settings{
		IsolationLevel:   this.config.IsolationLevel,
		AccessMode:       this.config.AccessMode,
		StatementTimeout: this.config.StatementTimeout,
	}
}

func (this *resource) Commit(ctx context.Context, transaction transactional.Transaction) error {
	return transaction.(pgx.Tx).Commit(ctx)
}
func (this *resource) Rollback(ctx context.Context, transaction transactional.Transaction) error {
	return transaction.(pgx.Tx).Rollback(ctx)
}
