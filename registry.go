package transactional

import "sync"

// registry is the executor's subscriber list. Delivery is synchronous on the
// goroutine performing the lifecycle transition, in registration order.
// Listener failures are not isolated from the triggering operation.
type registry struct {
	mutex         sync.Mutex
	sequence      uint64
	subscriptions []subscription
}
type subscription struct {
	id       uint64
	listener Listener
}

func (this *registry) Register(listener Listener) (remove func()) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	this.sequence++
	id := this.sequence
	this.subscriptions = append(this.subscriptions, subscription{id: id, listener: listener})
	return func() { this.unregister(id) }
}
func (this *registry) unregister(id uint64) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	for index, item := range this.subscriptions {
		if item.id == id {
			this.subscriptions = append(this.subscriptions[:index], this.subscriptions[index+1:]...)
			return
		}
	}
}

func (this *registry) Notify(event Event) {
	for _, listener := range this.snapshot() {
		listener.Notify(event)
	}
}
func (this *registry) snapshot() []Listener {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	snapshot := make([]Listener, 0, len(this.subscriptions))
	for _, item := range this.subscriptions {
		snapshot = append(snapshot, item.listener)
	}
	return snapshot
}
