package control

import (
	"context"
	"sync"
	"sync/atomic"
)

// Scope ties requests to the lifetime of one view. Closing the scope cancels
// its context, and results that arrive afterwards are dropped instead of applied.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	closed atomic.Bool
	wg     sync.WaitGroup
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context is canceled when the scope closes.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	return s.closed.Load()
}

// Close cancels in-flight requests and drops every result that has not been
// applied yet. A callback already running finishes; Wait blocks until it does.
// Close is safe to call from inside a callback.
func (s *Scope) Close() {
	s.closed.Store(true)
	s.cancel()
}

// Wait blocks until every fetch started with Go has finished, apply included.
func (s *Scope) Wait() {
	s.wg.Wait()
}

// apply runs fn unless the scope is closed. It reports whether fn ran.
func (s *Scope) apply(fn func()) bool {
	if s.closed.Load() {
		return false
	}
	fn()
	return true
}

// Go runs fetch in the background with the scope context and hands the result
// to apply, unless the scope was closed first.
func Go[T any](s *Scope, fetch func(ctx context.Context) (T, error), apply func(T, error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		v, err := fetch(s.ctx)
		s.apply(func() { apply(v, err) })
	}()
}

// Fetch is the blocking form of Go. ok is false when the scope closed before
// the result arrived; v and err are then zero.
func Fetch[T any](s *Scope, fetch func(ctx context.Context) (T, error)) (v T, ok bool, err error) {
	res, resErr := fetch(s.ctx)
	ok = s.apply(func() { v, err = res, resErr })
	return v, ok, err
}
