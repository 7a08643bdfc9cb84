package transactional

import "context"

type defaultExecutor struct {
	resource Resource
	defaults Settings
	contexts func() Context
	events   *registry
	monitor  monitor
	logger   logger
}

func (this *defaultExecutor) Execute(ctx context.Context, work Work) error {
	return this.ExecuteWith(ctx, this.defaults, work)
}

func (this *defaultExecutor) ExecuteWith(ctx context.Context, settings Settings, work Work) error {
	adapter := this.newAdapter(settings)
	if err := adapter.start(ctx); err != nil {
		return err
	}

	defer func() { this.finally(ctx, adapter, recover()) }()
	err := work(ctx, adapter)
	if err == nil && adapter.Active() {
		err = adapter.Commit(ctx)
	}
	if err == nil {
		return nil
	}

	if cleanup := adapter.stop(ctx); cleanup != nil {
		return CleanupError{Cause: err, Cleanup: cleanup}
	}
	return err
}

func (this *defaultExecutor) ExecuteCallable(ctx context.Context, callable Callable) error {
	return this.Execute(ctx, func(ctx context.Context, _ Adapter) error {
		if err := callable(ctx); err != nil {
			return InvocationError{Cause: err}
		}
		return nil
	})
}

// finally guarantees rollback when the unit of work panics; the original
// panic value is re-raised and a failed rollback is only reported, never
// allowed to mask it.
func (this *defaultExecutor) finally(ctx context.Context, adapter *defaultAdapter, recovered any) {
	if recovered == nil {
		return
	}
	if cleanup := adapter.stop(ctx); cleanup != nil {
		this.logger.Printf("[WARN] Unable to roll back transaction [%s] while handling panic.", cleanup)
	}
	panic(recovered)
}

func (this *defaultExecutor) Register(listener Listener) (remove func()) {
	return this.events.Register(listener)
}

func (this *defaultExecutor) newAdapter(settings Settings) *defaultAdapter {
	return &defaultAdapter{
		resource: this.resource,
		settings: settings,
		context:  this.contexts(),
		events:   this.events,
		monitor:  this.monitor,
		logger:   this.logger,
	}
}

// Run executes work that produces a value, committing on normal return and
// rolling back on failure, using the executor's default settings.
func Run[T any](ctx context.Context, executor Executor, work func(ctx context.Context, transaction Adapter) (T, error)) (result T, err error) {
	err = executor.Execute(ctx, func(ctx context.Context, transaction Adapter) error {
		value, err := work(ctx, transaction)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	return result, err
}

// RunWith is Run with explicit settings.
func RunWith[T any](ctx context.Context, executor Executor, settings Settings, work func(ctx context.Context, transaction Adapter) (T, error)) (result T, err error) {
	err = executor.ExecuteWith(ctx, settings, func(ctx context.Context, transaction Adapter) error {
		value, err := work(ctx, transaction)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	return result, err
}
