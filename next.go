package libevents

import (
	"context"
	"sync"
)

type (
	// OnceRegistrar is anything able to call fn on the next emission of event.
	// Emitter implements it; foreign emitters can be adapted with OnceRegistrarFunc.
	OnceRegistrar[K comparable, V any] interface {
		OnceFunc(event K, fn func(args ...V))
	}

	// OnceRegistrarFunc adapts an ordinary once-style function to OnceRegistrar.
	OnceRegistrarFunc[K comparable, V any] func(event K, fn func(args ...V))

	// Occurrence is the outcome of an emission observed by Next. Ok is false when
	// the event was emitted without arguments.
	Occurrence[V any] struct {
		Value V
		Ok    bool
	}

	// Future resolves exactly once, with the first argument of an emission.
	Future[V any] struct {
		done   chan struct{}
		once   sync.Once
		result Occurrence[V]
	}
)

func (f OnceRegistrarFunc[K, V]) OnceFunc(event K, fn func(args ...V)) {
	f(event, fn)
}

// Get returns the value and whether the emission carried one.
func (o Occurrence[V]) Get() (V, bool) {
	return o.Value, o.Ok
}

// Next registers a one-shot listener for event on r and returns a future for its
// first argument. It never times out; if event is not emitted again the future
// never resolves.
func Next[K comparable, V any](r OnceRegistrar[K, V], event K) *Future[V] {
	f := &Future[V]{done: make(chan struct{})}
	r.OnceFunc(event, f.resolve)
	return f
}

func (f *Future[V]) resolve(args ...V) {
	f.once.Do(func() {
		if len(args) > 0 {
			f.result = Occurrence[V]{Value: args[0], Ok: true}
		}
		close(f.done)
	})
}

// Done returns a channel that is closed once the future has resolved.
func (f *Future[V]) Done() <-chan struct{} {
	return f.done
}

// Result returns the resolved occurrence, or the zero Occurrence if the future has
// not resolved yet.
func (f *Future[V]) Result() Occurrence[V] {
	select {
	case <-f.done:
		return f.result
	default:
		return Occurrence[V]{}
	}
}

// Wait blocks until the future resolves or ctx is done. Giving up on the wait leaves
// the one-shot listener registered.
func (f *Future[V]) Wait(ctx context.Context) (Occurrence[V], error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return Occurrence[V]{}, ctx.Err()
	}
}
