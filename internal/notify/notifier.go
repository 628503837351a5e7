// Package notify delivers download completion events to whoever registered
// for them: the UI toast, the system notification, the CLI printer.
package notify

import (
	"fmt"
	"sync"
)

// CompletionEvent is published once per completed download
type CompletionEvent struct {
	Title   string
	Quality string
}

// Message returns the user-facing completion text
func (e CompletionEvent) Message() string {
	return fmt.Sprintf("%s (%s) has been saved to your device.", e.Title, e.Quality)
}

// Publisher is the side the download service depends on
type Publisher interface {
	Publish(CompletionEvent)
}

// Dispatcher fans completion events out to subscribers in subscription order
type Dispatcher struct {
	mu      sync.RWMutex
	nextID  int
	order   []int
	entries map[int]func(CompletionEvent)
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{entries: make(map[int]func(CompletionEvent))}
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (d *Dispatcher) Subscribe(fn func(CompletionEvent)) func() {
	if fn == nil {
		return func() {}
	}

	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.entries[id] = fn
	d.order = append(d.order, id)
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *Dispatcher) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Publish calls every subscriber synchronously. Subscribers may unsubscribe
// from inside the callback.
func (d *Dispatcher) Publish(evt CompletionEvent) {
	d.mu.RLock()
	listeners := make([]func(CompletionEvent), 0, len(d.order))
	for _, id := range d.order {
		listeners = append(listeners, d.entries[id])
	}
	d.mu.RUnlock()

	for _, fn := range listeners {
		fn(evt)
	}
}

// Len returns the number of subscribers
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.order)
}
