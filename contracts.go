package transactional

import (
	"context"
	"errors"
	"fmt"
)

// Resource adapts one native transaction technology, e.g. a SQL database or
// an AMQP channel. Begin opens a new native transaction, Commit and Rollback
// end one. What "active" means for the native handle is the resource's call.
type Resource interface {
	Begin(ctx context.Context, settings Settings) (Transaction, error)
	Commit(ctx context.Context, transaction Transaction) error
	Rollback(ctx context.Context, transaction Transaction) error
}

// Transaction is the opaque native transaction handle produced by a Resource.
type Transaction interface{}

// Settings travel opaquely from the caller to Resource.Begin; the executor
// and adapter never interpret them.
type Settings interface{}

// Adapter owns at most one active native transaction at a time. It is bound
// to a single unit of work and must only be used from the goroutine running
// that work.
type Adapter interface {
	// Context identifies this logical transaction; stable across InterCommit.
	Context() Context

	// Active reports whether a native transaction is currently held.
	Active() bool

	// Transaction returns the active native handle or ErrTransactionNotActive.
	Transaction() (Transaction, error)

	// Commit ends the active transaction successfully.
	Commit(ctx context.Context) error

	// InterCommit commits the work so far and immediately begins a fresh
	// native transaction under the same logical Context. Intended for
	// long-running work that must flush periodically.
	InterCommit(ctx context.Context) error

	// Rollback discards the active transaction.
	Rollback(ctx context.Context) error
}

// Work is a unit of work run within a transaction. It may end the
// transaction itself (Commit, Rollback, or InterCommit); the executor only
// commits on its behalf when work returns nil with the transaction still
// active.
type Work func(ctx context.Context, transaction Adapter) error

// Callable is a transaction-unaware unit of work.
type Callable func(ctx context.Context) error

type Executor interface {
	// Execute runs work in a fresh transaction using the default settings.
	Execute(ctx context.Context, work Work) error

	// ExecuteWith runs work in a fresh transaction using explicit settings.
	ExecuteWith(ctx context.Context, settings Settings, work Work) error

	// ExecuteCallable runs a transaction-unaware callable; any failure it
	// reports is wrapped in an InvocationError.
	ExecuteCallable(ctx context.Context, callable Callable) error

	// Register subscribes the listener to lifecycle events. The returned
	// function removes the subscription.
	Register(listener Listener) (remove func())
}

type EventType uint8

const (
	EventStart EventType = iota
	EventCommit
	EventContinue
	EventRollback
	EventStop
)

func (this EventType) String() string {
	switch this {
	case EventStart:
		return "START"
	case EventCommit:
		return "COMMIT"
	case EventContinue:
		return "CONTINUE"
	case EventRollback:
		return "ROLLBACK"
	case EventStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// Event records one lifecycle transition of one logical transaction.
type Event struct {
	Type    EventType
	Context Context
}

// Listener receives lifecycle events synchronously on the goroutine
// performing the transition, in registration order.
type Listener interface {
	Notify(event Event)
}

type ListenerFunc func(event Event)

func (this ListenerFunc) Notify(event Event) { this(event) }

// ErrTransactionNotActive indicates an operation requiring an active native
// transaction was invoked while none was held. Programmer error; not retried.
var ErrTransactionNotActive = errors.New("transaction not active")

// CleanupError reports that rolling back after a failed unit of work itself
// failed. Cause remains the primary failure; errors.Is and errors.As observe
// both.
type CleanupError struct {
	Cause   error
	Cleanup error
}

func (this CleanupError) Error() string {
	return fmt.Sprintf("transaction cleanup failed [%s] while handling failure [%s]", this.Cleanup, this.Cause)
}
func (this CleanupError) Unwrap() []error { return []error{this.Cause, this.Cleanup} }

// InvocationError wraps a failure reported by a transaction-unaware callable.
type InvocationError struct {
	Cause error
}

func (this InvocationError) Error() string {
	return fmt.Sprintf("invocation failed [%s]", this.Cause)
}
func (this InvocationError) Unwrap() error { return this.Cause }

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type monitor interface {
	TransactionStarted(error)
	TransactionCommitted(error)
	TransactionRolledBack(error)
}
type logger interface {
	Printf(format string, args ...any)
}
