package transactional

// New builds an immutable executor around the given resource. Default
// settings are fixed here; there is no way to change them afterward.
func New(resource Resource, options ...option) Executor {
	this := defaultExecutor{resource: resource, events: &registry{}}

	for _, item := range Options.defaults(options...) {
		item(&this)
	}

	return &this
}

var Options singleton

type singleton struct{}
type option func(*defaultExecutor)

// DefaultSettings fixes the settings used when a caller omits explicit ones.
func (singleton) DefaultSettings(value Settings) option {
	return func(this *defaultExecutor) { this.defaults = value }
}

// ContextSource overrides how transaction Context values are fabricated.
func (singleton) ContextSource(value func() Context) option {
	return func(this *defaultExecutor) { this.contexts = value }
}

// Listener registers a lifecycle listener at construction time.
func (singleton) Listener(value Listener) option {
	return func(this *defaultExecutor) { this.events.Register(value) }
}

func (singleton) Logger(value logger) option {
	return func(this *defaultExecutor) { this.logger = value }
}
func (singleton) Monitor(value monitor) option {
	return func(this *defaultExecutor) { this.monitor = value }
}

func (singleton) defaults(options ...option) []option {
	return append([]option{
		Options.ContextSource(newContext),
		Options.Logger(nop{}),
		Options.Monitor(nop{}),
	}, options...)
}

type nop struct{}

func (nop) Printf(_ string, _ ...any) {}

func (nop) TransactionStarted(_ error)    {}
func (nop) TransactionCommitted(_ error)  {}
func (nop) TransactionRolledBack(_ error) {}
