package event

import (
	"context"
	"fmt"
	"time"
)

// Handler processes a dispatched event.
type Handler interface {
	Handle(ctx context.Context, ev Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, ev Event) error

// Handle calls fn.
func (fn HandlerFunc) Handle(ctx context.Context, ev Event) error {
	return fn(ctx, ev)
}

// Result reports one handler execution.
type Result struct {
	Success    bool
	Err        error
	Panicked   bool
	PanicValue any
	Duration   time.Duration
}

// IsSuccess returns true when the handler completed without error or
// panic.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Err == nil
}

// PanicHandler is invoked when a handler panics, before the panic is
// converted into a failed Result.
type PanicHandler func(ev Event, value any)

// Executor runs a handler with panic recovery. A panicking handler
// degrades to an error result instead of unwinding the event loop.
type Executor struct {
	onPanic PanicHandler
}

// NewExecutor creates an Executor.
func NewExecutor(onPanic PanicHandler) *Executor {
	return &Executor{onPanic: onPanic}
}

// Execute runs the handler and captures its outcome.
func (e *Executor) Execute(ctx context.Context, ev Event, h Handler) (res Result) {
	start := time.Now()

	defer func() {
		res.Duration = time.Since(start)
		if v := recover(); v != nil {
			res.Panicked = true
			res.PanicValue = v
			res.Success = false
			res.Err = fmt.Errorf("handler panic on %s: %v", ev.Name, v)
			if e.onPanic != nil {
				e.onPanic(ev, v)
			}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Result{Err: err}
	}

	if err := h.Handle(ctx, ev); err != nil {
		return Result{Err: err}
	}
	return Result{Success: true}
}
