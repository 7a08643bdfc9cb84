package sqltx

import (
	"database/sql"

	"github.com/smarty/transactional"
)

func New(handle *sql.DB, options ...option) transactional.Resource {
	config := configuration{Handle: handle}

	for _, item := range Options.defaults(options...) {
		item(&config)
	}

	return newResource(config)
}

type configuration struct {
	Handle         *sql.DB
	ReadOnly       bool
	IsolationLevel sql.IsolationLevel
	Logger         logger
}

// Settings override the configured defaults for a single transaction when
// supplied to the executor.
type Settings struct {
	ReadOnly       bool
	IsolationLevel sql.IsolationLevel
}

var Options singleton

type singleton struct{}
type option func(*configuration)

func (singleton) ReadOnly(value bool) option {
	return func(this *configuration) { this.ReadOnly = value }
}
func (singleton) IsolationLevel(value sql.IsolationLevel) option {
	return func(this *configuration) { this.IsolationLevel = value }
}
func (singleton) Logger(value logger) option {
	return func(this *configuration) { this.Logger = value }
}

func (singleton) defaults(options ...option) []option {
	return append([]option{
		Options.ReadOnly(false),
		Options.IsolationLevel(sql.LevelReadCommitted),
		Options.Logger(&nop{}),
	}, options...)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type logger interface {
	Printf(format string, args ...any)
}

type nop struct{}

func (*nop) Printf(_ string, _ ...any) {}
