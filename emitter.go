package libevents

import (
	"sync"
	"sync/atomic"
)

type entry[V any] struct {
	listener *Listener[V]
	once     bool
	// fired latches once entries so concurrent emits cannot both run them.
	fired atomic.Bool
}

// Emitter is a synchronous event emitter. It maps events (of type K) to ordered
// lists of listeners, which receive the arguments (of type V) passed to Emit.
//
// Listeners run on the goroutine calling Emit, in registration order. Emit
// dispatches over a copy of the listener list, so listeners may register or remove
// listeners (themselves included) and those changes only apply to later emits.
// The lock is never held while a listener runs.
//
// Every event shares the argument type V and the number of arguments is not
// checked: Emit passes whatever it is given to each listener.
//
// The zero value is an empty emitter ready to use, with no logger and the default
// Config. Use NewEmitter to pass options.
type Emitter[K comparable, V any] struct {
	listeners map[K][]*entry[V]
	count     int
	warned    map[K]struct{}
	lock      sync.RWMutex

	logger Logger
	config Config
}

// NewEmitter creates a new Emitter with no listeners and returns a pointer to it.
func NewEmitter[K comparable, V any](opts ...Option) *Emitter[K, V] {
	o := newOptions(opts...)
	return &Emitter[K, V]{
		listeners: make(map[K][]*entry[V]),
		warned:    make(map[K]struct{}),
		logger:    o.logger,
		config:    o.config,
	}
}

// AddListener appends listener to the event's listener list. The same listener may be
// added several times; each addition is invoked independently, while removing the
// listener drops all of them.
func (e *Emitter[K, V]) AddListener(event K, listener *Listener[V]) *Emitter[K, V] {
	e.addListener(event, listener, false)
	return e
}

// On is an alias of AddListener.
func (e *Emitter[K, V]) On(event K, listener *Listener[V]) *Emitter[K, V] {
	return e.AddListener(event, listener)
}

// AddOnceListener appends a listener that is removed right before its first invocation.
// The removal works like RemoveListener: other entries holding the same listener for
// event go with it.
func (e *Emitter[K, V]) AddOnceListener(event K, listener *Listener[V]) *Emitter[K, V] {
	e.addListener(event, listener, true)
	return e
}

// Once is an alias of AddOnceListener.
func (e *Emitter[K, V]) Once(event K, listener *Listener[V]) *Emitter[K, V] {
	return e.AddOnceListener(event, listener)
}

// Subscribe registers fn for event and returns its handle, which can be passed to
// RemoveListener later.
func (e *Emitter[K, V]) Subscribe(event K, fn func(args ...V)) *Listener[V] {
	listener := NewListener(fn)
	e.addListener(event, listener, false)
	return listener
}

// SubscribeOnce is like Subscribe but the listener fires at most once.
func (e *Emitter[K, V]) SubscribeOnce(event K, fn func(args ...V)) *Listener[V] {
	listener := NewListener(fn)
	e.addListener(event, listener, true)
	return listener
}

// OnFunc registers fn for event without handing out a handle.
func (e *Emitter[K, V]) OnFunc(event K, fn func(args ...V)) {
	e.Subscribe(event, fn)
}

// OnceFunc registers fn for the next emission of event. It makes Emitter an
// OnceRegistrar.
func (e *Emitter[K, V]) OnceFunc(event K, fn func(args ...V)) {
	e.SubscribeOnce(event, fn)
}

// Emit calls every listener registered for event, in registration order, with args.
// It reports whether the event had listeners.
//
// A panicking listener is not recovered: the panic leaves Emit and the remaining
// listeners of this call are not invoked. Wrap listeners with Recover to isolate them.
func (e *Emitter[K, V]) Emit(event K, args ...V) bool {
	e.lock.RLock()
	live, found := e.listeners[event]
	if !found {
		e.lock.RUnlock()
		return false
	}
	snapshot := make([]*entry[V], len(live))
	copy(snapshot, live)
	e.lock.RUnlock()

	if e.config.Debug {
		e.log().WithField("event", event).Debugf("emitting to %d listeners", len(snapshot))
	}

	for _, en := range snapshot {
		if en.once {
			if !en.fired.CompareAndSwap(false, true) {
				continue
			}
			e.removeFiring(event, en.listener)
		}
		en.listener.Call(args...)
	}

	return true
}

// RemoveListener removes every entry of event whose listener is one of listeners.
// Without listeners it removes all of the event's entries.
// It returns false when the event had nothing registered.
//
// Unlike the registering methods it does not return the Emitter, so calls cannot be
// chained: the result tells apart "nothing registered" from "removal performed".
func (e *Emitter[K, V]) RemoveListener(event K, listeners ...*Listener[V]) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	live, found := e.listeners[event]
	if !found {
		return false
	}

	if len(listeners) == 0 {
		e.dropEvent(event)
		return true
	}

	e.removeMatching(event, live, listeners)
	return true
}

// Off is an alias of RemoveListener.
func (e *Emitter[K, V]) Off(event K, listeners ...*Listener[V]) bool {
	return e.RemoveListener(event, listeners...)
}

// RemoveAllListeners removes the listeners of the given events, or of every event
// when none is given.
func (e *Emitter[K, V]) RemoveAllListeners(events ...K) *Emitter[K, V] {
	e.lock.Lock()
	defer e.lock.Unlock()

	if len(events) == 0 {
		e.reset()
		return e
	}

	for _, event := range events {
		if _, found := e.listeners[event]; found {
			e.dropEvent(event)
		}
	}

	return e
}

// Close removes all listeners.
func (e *Emitter[K, V]) Close() {
	e.RemoveAllListeners()
}

// ListenerCount returns the number of entries registered for event.
func (e *Emitter[K, V]) ListenerCount(event K) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[event])
}

// Listeners returns the listeners of event in invocation order.
func (e *Emitter[K, V]) Listeners(event K) []*Listener[V] {
	e.lock.RLock()
	defer e.lock.RUnlock()

	live := e.listeners[event]
	res := make([]*Listener[V], 0, len(live))
	for _, en := range live {
		res = append(res, en.listener)
	}
	return res
}

// Len returns the number of entries registered across all events.
func (e *Emitter[K, V]) Len() int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return e.count
}

// EventNames returns the events that currently have listeners, in no particular order.
func (e *Emitter[K, V]) EventNames() []K {
	e.lock.RLock()
	defer e.lock.RUnlock()

	names := make([]K, 0, len(e.listeners))
	for event := range e.listeners {
		names = append(names, event)
	}
	return names
}

func (e *Emitter[K, V]) addListener(event K, listener *Listener[V], once bool) {
	n, warn := e.appendEntry(event, &entry[V]{listener: listener, once: once})

	// Logged without the lock so a Logger may call back into the emitter.
	if e.config.Debug {
		e.log().WithField("event", event).Debugf("listener added (once=%t), %d registered", once, n)
	}
	if warn {
		e.log().WithField("event", event).Warnf("possible listener leak: %d listeners added, max is %d", n, e.config.MaxListeners)
	}
}

// appendEntry stores en and reports the event's listener count and whether it just
// crossed MaxListeners for the first time.
func (e *Emitter[K, V]) appendEntry(event K, en *entry[V]) (int, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.listeners == nil {
		e.reset()
	}

	e.listeners[event] = append(e.listeners[event], en)
	e.count++

	n := len(e.listeners[event])
	limit := e.config.MaxListeners
	if limit <= 0 || n <= limit {
		return n, false
	}
	if _, done := e.warned[event]; done {
		return n, false
	}
	e.warned[event] = struct{}{}
	return n, true
}

// removeFiring unregisters a once listener right before it runs. Like
// RemoveListener it drops every entry of event holding that listener.
func (e *Emitter[K, V]) removeFiring(event K, listener *Listener[V]) {
	e.lock.Lock()
	defer e.lock.Unlock()

	live, found := e.listeners[event]
	if !found {
		return
	}
	e.removeMatching(event, live, []*Listener[V]{listener})
}

// removeMatching filters listeners out of live, the current list of event.
// Callers hold the lock.
func (e *Emitter[K, V]) removeMatching(event K, live []*entry[V], listeners []*Listener[V]) {
	kept := live[:0]
	for _, en := range live {
		if containsListener(listeners, en.listener) {
			e.count--
			continue
		}
		kept = append(kept, en)
	}
	clear(live[len(kept):])

	e.settle(event, kept)
}

func (e *Emitter[K, V]) log() Logger {
	if e.logger == nil {
		return NewNoopLogger()
	}
	return e.logger
}

// dropEvent removes the whole list of event. Callers hold the lock.
func (e *Emitter[K, V]) dropEvent(event K) {
	e.count -= len(e.listeners[event])
	e.settle(event, nil)
}

// settle stores the remaining list of event, deleting the key when it is empty and
// resetting the map when nothing is registered anymore. Callers hold the lock.
func (e *Emitter[K, V]) settle(event K, remaining []*entry[V]) {
	switch {
	case e.count <= 0:
		e.reset()
	case len(remaining) == 0:
		delete(e.listeners, event)
		delete(e.warned, event)
	default:
		e.listeners[event] = remaining
	}
}

func (e *Emitter[K, V]) reset() {
	e.listeners = make(map[K][]*entry[V])
	e.warned = make(map[K]struct{})
	e.count = 0
}

func containsListener[V any](listeners []*Listener[V], target *Listener[V]) bool {
	for _, l := range listeners {
		if l == target {
			return true
		}
	}
	return false
}
