package evaluator

import (
	"context"
	"sync"
)

// PromiseState is the settle state of a Promise.
type PromiseState int

const (
	PromisePending PromiseState = iota
	PromiseFulfilled
	PromiseRejected
)

func (s PromiseState) String() string {
	switch s {
	case PromiseFulfilled:
		return "fulfilled"
	case PromiseRejected:
		return "rejected"
	}
	return "pending"
}

// Promise is a settle-once container. Await blocks the calling strand
// until the promise settles or the context is cancelled; a promise
// settles exactly once, later Resolve/Reject calls are ignored.
type Promise struct {
	mu    sync.Mutex
	state PromiseState
	value Object
	done  chan struct{}
}

func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// ResolvedPromise returns an already-fulfilled promise.
func ResolvedPromise(value Object) *Promise {
	p := NewPromise()
	p.Resolve(value)
	return p
}

// RejectedPromise returns an already-rejected promise.
func RejectedPromise(reason Object) *Promise {
	p := NewPromise()
	p.Reject(reason)
	return p
}

func (p *Promise) Type() ObjectType { return PROMISE_OBJ }

func (p *Promise) Inspect() string {
	state, value := p.Snapshot()
	switch state {
	case PromiseFulfilled:
		return "Promise { " + value.Inspect() + " }"
	case PromiseRejected:
		return "Promise { <rejected> " + value.Inspect() + " }"
	}
	return "Promise { <pending> }"
}

// Snapshot returns the current state and settled value without blocking.
func (p *Promise) Snapshot() (PromiseState, Object) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.value
}

func (p *Promise) Resolve(value Object) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != PromisePending {
		return
	}
	p.state = PromiseFulfilled
	p.value = value
	close(p.done)
}

func (p *Promise) Reject(reason Object) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != PromisePending {
		return
	}
	p.state = PromiseRejected
	p.value = reason
	close(p.done)
}

// Await blocks until the promise settles. A fulfilled promise yields
// its value; a rejected one yields a throw signal carrying the reason.
// Context cancellation yields a throw signal as well.
func (p *Promise) Await(ctx context.Context) Object {
	select {
	case <-p.done:
	case <-ctx.Done():
		return newError("Aborted", "execution aborted: %s", ctx.Err())
	}
	state, value := p.Snapshot()
	if state == PromiseRejected {
		return &ThrowSignal{Value: value}
	}
	return value
}
