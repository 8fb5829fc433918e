// Package screen models the request/response lifecycle of one screen:
// idle → loading → success | failed.
//
// Starting a new load cancels the one in flight, and a response that arrives
// for anything but the latest load is discarded with ErrStale, so navigating
// away or changing filters mid-fetch can never overwrite newer data.
package screen

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned when a response belongs to a superseded load.
var ErrStale = errors.New("stale response discarded")

// Phase is the lifecycle position of a screen load.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Loader. On failure Data keeps the last
// successful value so the screen can fall back to it.
type State[T any] struct {
	Phase Phase
	Data  T
	Err   error
}

// Ticket identifies one load started with Begin.
type Ticket struct {
	gen uint64
}

// Loader tracks the load state of one screen. The zero value is idle and
// ready to use.
type Loader[T any] struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  State[T]
}

// Begin starts a new load, cancelling any load in flight. The returned
// context is cancelled when the load is superseded or reset.
func (l *Loader[T]) Begin(ctx context.Context) (context.Context, Ticket) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()
	l.gen++
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state.Phase = Loading
	l.state.Err = nil
	return ctx, Ticket{gen: l.gen}
}

// Resolve records data for t. It returns ErrStale when t is not current.
func (l *Loader[T]) Resolve(t Ticket, data T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.currentLocked(t) {
		return ErrStale
	}
	l.stopLocked()
	l.state = State[T]{Phase: Success, Data: data}
	return nil
}

// Fail records err for t. It returns ErrStale when t is not current.
func (l *Loader[T]) Fail(t Ticket, err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.currentLocked(t) {
		return ErrStale
	}
	l.stopLocked()
	l.state.Phase = Failed
	l.state.Err = err
	return nil
}

// Reset cancels any load in flight and returns to idle.
func (l *Loader[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()
	l.gen++
	l.state = State[T]{}
}

// State returns a snapshot of the current state.
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader[T]) currentLocked(t Ticket) bool {
	return t.gen == l.gen && l.state.Phase == Loading
}

func (l *Loader[T]) stopLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Run performs fn as a single load on l and returns its result. If the load
// is superseded while fn runs, Run returns ErrStale instead.
func Run[T any](ctx context.Context, l *Loader[T], fn func(context.Context) (T, error)) (T, error) {
	var zero T
	ctx, t := l.Begin(ctx)
	data, err := fn(ctx)
	if err != nil {
		if ferr := l.Fail(t, err); ferr != nil {
			return zero, ferr
		}
		return zero, err
	}
	if err := l.Resolve(t, data); err != nil {
		return zero, err
	}
	return data, nil
}
