package sqltx

import (
	"context"
	"database/sql"

	"github.com/smarty/transactional"
)

type resource struct {
	handle    *sql.DB
	txOptions *sql.TxOptions
	logger    logger
}

func newResource(config configuration) transactional.Resource {
	return &resource{
		handle:    config.Handle,
		txOptions: &sql.TxOptions{Isolation: config.IsolationLevel, ReadOnly: config.ReadOnly},
		logger:    config.Logger,
	}
}

func (this *resource) Begin(ctx context.Context, settings transactional.Settings) (transactional.Transaction, error) {
	if tx, err := this.handle.BeginTx(ctx, this.options(settings)); err != nil {
		this.logger.Printf("[WARN] Unable to begin transaction [%s].", err)
		return nil, err
	} else {
		return tx, nil
	}
}
func (this *resource) options(settings transactional.Settings) *sql.TxOptions {
	if value, ok := settings.(Settings); ok {
		return &sql.TxOptions{Isolation: value.IsolationLevel, ReadOnly: value.ReadOnly}
	}
	return this.txOptions
}

func (this *resource) Commit(_ context.Context, transaction transactional.Transaction) error {
	return transaction.(*sql.Tx).Commit()
}
func (this *resource) Rollback(_ context.Context, transaction transactional.Transaction) error {
	return transaction.(*sql.Tx).Rollback()
}
