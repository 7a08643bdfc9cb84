package pgxtx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smarty/transactional"
)

func New(handle *pgxpool.Pool, options ...option) transactional.Resource {
	config := configuration{Pool: handle}

	for _, item := range Options.defaults(options...) {
		item(&config)
	}

	return newResource(config)
}

// pool is the subset of *pgxpool.Pool this package uses.
type pool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type configuration struct {
	Pool             pool
	IsolationLevel   pgx.TxIsoLevel
	AccessMode       pgx.TxAccessMode
	StatementTimeout time.Duration
	Logger           logger
}

// Settings override the configured defaults for a single transaction when
// supplied to the executor. StatementTimeout, when positive, is applied with
// SET LOCAL so it dies with the transaction.
type Settings struct {
	IsolationLevel   pgx.TxIsoLevel
	AccessMode       pgx.TxAccessMode
	StatementTimeout time.Duration
}

var Options singleton

type singleton struct{}
type option func(*configuration)

func (singleton) IsolationLevel(value pgx.TxIsoLevel) option {
	return func(this *configuration) { this.IsolationLevel = value }
}
func (singleton) AccessMode(value pgx.TxAccessMode) option {
	return func(this *configuration) { this.AccessMode = value }
}
func (singleton) StatementTimeout(value time.Duration) option {
	return func(this *configuration) { this.StatementTimeout = value }
}
func (singleton) Logger(value logger) option {
	return func(this *configuration) { this.Logger = value }
}

func (singleton) defaults(options ...option) []option {
	return append([]option{
		Options.IsolationLevel(pgx.ReadCommitted),
		Options.AccessMode(pgx.ReadWrite),
		Options.Logger(&nop{}),
	}, options...)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type logger interface {
	Printf(format string, args ...any)
}

type nop struct{}

func (*nop) Printf(_ string, _ ...any) {}
