package amqptx

import (
	"github.com/streadway/amqp"

	"github.com/smarty/transactional"
)

func New(handle *amqp.Connection, options ...option) transactional.Resource {
	config := configuration{Connection: liveConnection{inner: handle}}

	for _, item := range Options.defaults(options...) {
		item(&config)
	}

	return newResource(config)
}

type configuration struct {
	Connection connection
	Logger     logger
}

var Options singleton

type singleton struct{}
type option func(*configuration)

func (singleton) Logger(value logger) option {
	return func(this *configuration) { this.Logger = value }
}

func (singleton) defaults(options ...option) []option {
	return append([]option{
		Options.Logger(&nop{}),
	}, options...)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type logger interface {
	Printf(format string, args ...any)
}

type nop struct{}

func (*nop) Printf(_ string, _ ...any) {}
