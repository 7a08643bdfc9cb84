package transactional

import "context"

// defaultAdapter holds zero-or-one active native transaction. Invariant:
// Active() == (transaction != nil). The handle is set by start and
// InterCommit and cleared by Commit and Rollback.
type defaultAdapter struct {
	resource    Resource
	settings    Settings
	context     Context
	transaction Transaction
	events      Listener
	monitor     monitor
	logger      logger
}

func (this *defaultAdapter) Context() Context { return this.context }
func (this *defaultAdapter) Active() bool     { return this.transaction != nil }
func (this *defaultAdapter) Transaction() (Transaction, error) {
	if this.transaction == nil {
		return nil, ErrTransactionNotActive
	}
	return this.transaction, nil
}

// start must be called exactly once, immediately after construction, before
// any other operation.
func (this *defaultAdapter) start(ctx context.Context) error {
	transaction, err := this.begin(ctx)
	if err != nil {
		return err
	}
	this.transaction = transaction
	this.emit(EventStart)
	return nil
}
func (this *defaultAdapter) begin(ctx context.Context) (Transaction, error) {
	transaction, err := this.resource.Begin(ctx, this.settings)
	if err != nil {
		this.logger.Printf("[WARN] Unable to begin transaction [%s].", err)
		this.monitor.TransactionStarted(err)
		return nil, err
	}
	this.monitor.TransactionStarted(nil)
	return transaction, nil
}

func (this *defaultAdapter) Commit(ctx context.Context) error {
	transaction, err := this.Transaction()
	if err != nil {
		return err
	}
	if err = this.resource.Commit(ctx, transaction); err != nil {
		this.logger.Printf("[%s] Unable to commit transaction [%s].", logSeverity(err), err)
		this.monitor.TransactionCommitted(err)
		return err
	}
	this.transaction = nil
	this.monitor.TransactionCommitted(nil)
	this.emit(EventCommit)
	return nil
}

func (this *defaultAdapter) InterCommit(ctx context.Context) error {
	if err := this.Commit(ctx); err != nil {
		return err
	}
	transaction, err := this.begin(ctx)
	if err != nil {
		return err
	}
	this.transaction = transaction
	this.emit(EventContinue)
	return nil
}

func (this *defaultAdapter) Rollback(ctx context.Context) error {
	transaction, err := this.Transaction()
	if err != nil {
		return err
	}
	if err = this.resource.Rollback(ctx, transaction); err != nil {
		this.logger.Printf("[WARN] Unable to roll back transaction [%s].", err)
		this.monitor.TransactionRolledBack(err)
		return err
	}
	this.transaction = nil
	this.monitor.TransactionRolledBack(nil)
	this.emit(EventRollback)
	return nil
}

// stop is the single recovery path: rollback if still active, then emit STOP.
// Idempotent; stopping an already-ended adapter still emits STOP.
func (this *defaultAdapter) stop(ctx context.Context) (err error) {
	if this.Active() {
		err = this.Rollback(ctx)
	}
	this.emit(EventStop)
	return err
}

func (this *defaultAdapter) emit(eventType EventType) {
	this.events.Notify(Event{Type: eventType, Context: this.context})
}

func logSeverity(err error) string {
	switch err {
	case context.Canceled, context.DeadlineExceeded:
		return "INFO"
	default:
		return "WARN"
	}
}
