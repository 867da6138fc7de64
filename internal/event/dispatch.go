package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// ErrNotSubscribed indicates an unsubscribe for an unknown subscription.
var ErrNotSubscribed = errors.New("subscription not found")

// Subscription identifies one registered handler.
type Subscription struct {
	ID   string
	Name Name
}

type registration struct {
	id      string
	handler Handler
}

// Dispatcher routes events to handlers registered against event names.
// Delivery is synchronous and in registration order. Dispatcher is safe
// for concurrent use, though the application drives it from a single
// goroutine.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Name][]registration
	executor *Executor

	// Stats
	dispatched atomic.Uint64
	succeeded  atomic.Uint64
	failed     atomic.Uint64
	panicked   atomic.Uint64
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithPanicHandler sets the callback invoked when a handler panics.
func WithPanicHandler(h PanicHandler) DispatcherOption {
	return func(d *Dispatcher) {
		d.executor = NewExecutor(h)
	}
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[Name][]registration),
		executor: NewExecutor(nil),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Subscribe registers a handler for the named event.
func (d *Dispatcher) Subscribe(name Name, h Handler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	sub := Subscription{ID: uuid.NewString(), Name: name}
	d.handlers[name] = append(d.handlers[name], registration{id: sub.ID, handler: h})
	return sub
}

// SubscribeFunc registers a function handler for the named event.
func (d *Dispatcher) SubscribeFunc(name Name, fn HandlerFunc) Subscription {
	return d.Subscribe(name, fn)
}

// Unsubscribe removes a subscription.
func (d *Dispatcher) Unsubscribe(sub Subscription) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.handlers[sub.Name]
	for i, reg := range regs {
		if reg.id == sub.ID {
			d.handlers[sub.Name] = append(regs[:i:i], regs[i+1:]...)
			return nil
		}
	}
	return ErrNotSubscribed
}

// Dispatch delivers the event to every handler registered for its name,
// in registration order, and returns their results. A handler error or
// panic does not stop delivery to later handlers.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) []Result {
	d.mu.RLock()
	regs := d.handlers[ev.Name]
	handlers := make([]Handler, len(regs))
	for i, reg := range regs {
		handlers[i] = reg.handler
	}
	d.mu.RUnlock()

	d.dispatched.Add(1)

	results := make([]Result, len(handlers))
	for i, h := range handlers {
		results[i] = d.executor.Execute(ctx, ev, h)
		switch {
		case results[i].Panicked:
			d.panicked.Add(1)
		case results[i].Err != nil:
			d.failed.Add(1)
		default:
			d.succeeded.Add(1)
		}
	}
	return results
}

// Stats reports dispatch counters.
type Stats struct {
	Dispatched uint64
	Succeeded  uint64
	Failed     uint64
	Panicked   uint64
}

// Stats returns a snapshot of the dispatch counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Dispatched: d.dispatched.Load(),
		Succeeded:  d.succeeded.Load(),
		Failed:     d.failed.Load(),
		Panicked:   d.panicked.Load(),
	}
}
