package transactional

import (
	"time"

	"github.com/google/uuid"
)

// Context identifies one logical transaction. It is created once per adapter
// and remains stable for the adapter's lifetime, including across
// InterCommit, which replaces the native handle but not the logical
// transaction.
type Context struct {
	ID      uuid.UUID
	Started time.Time
}

func newContext() Context {
	return Context{ID: uuid.New(), Started: time.Now().UTC()}
}

func (this Context) String() string { return this.ID.String() }
