package amqptx

import (
	"context"

	"github.com/streadway/amqp"

	"github.com/smarty/transactional"
)

// resource binds the coordinator to AMQP channel transactions. Each native
// handle is a dedicated channel placed in tx mode; committing or rolling back
// ends the handle and closes the channel.
type resource struct {
	connection connection
	logger     logger
}

func newResource(config configuration) transactional.Resource {
	return &resource{connection: config.Connection, logger: config.Logger}
}

func (this *resource) Begin(_ context.Context, _ transactional.Settings) (transactional.Transaction, error) {
	channel, err := this.connection.Channel()
	if err != nil {
		this.logger.Printf("[WARN] Unable to open AMQP channel [%s].", err)
		return nil, err
	}

	if err = channel.Tx(); err != nil {
		this.logger.Printf("[WARN] Unable to begin AMQP transaction [%s].", err)
		_ = channel.Close()
		return nil, err
	}

	return channel, nil
}

func (this *resource) Commit(_ context.Context, transaction transactional.Transaction) error {
	channel := transaction.(channelTx)
	err := channel.TxCommit()
	_ = channel.Close()
	return err
}
func (this *resource) Rollback(_ context.Context, transaction transactional.Transaction) error {
	channel := transaction.(channelTx)
	err := channel.TxRollback()
	_ = channel.Close()
	return err
}

// connection is the subset of *amqp.Connection this package uses.
type connection interface {
	Channel() (channelTx, error)
}

// channelTx is the subset of *amqp.Channel this package uses.
type channelTx interface {
	Tx() error
	TxCommit() error
	TxRollback() error
	Close() error
}

type liveConnection struct{ inner *amqp.Connection }

func (this liveConnection) Channel() (channelTx, error) { return this.inner.Channel() }
