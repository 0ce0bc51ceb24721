package libevents

// ListenerFunc is the callback signature of a listener.
type ListenerFunc[V any] func(args ...V)

// Listener wraps a callback so it can be identified later. Funcs are not comparable
// in Go, the *Listener pointer is: removing a listener removes every entry that was
// registered with the same pointer.
type Listener[V any] struct {
	fn ListenerFunc[V]
}

// NewListener returns a new listener handle around fn.
func NewListener[V any](fn func(args ...V)) *Listener[V] {
	return &Listener[V]{fn: fn}
}

// Call invokes the underlying callback.
func (l *Listener[V]) Call(args ...V) {
	l.fn(args...)
}

// Recover wraps listener so that a panic inside it is turned into an error handed to
// onPanic instead of unwinding through Emit. The returned listener is a new handle.
func Recover[V any](listener *Listener[V], onPanic func(error)) *Listener[V] {
	return NewListener(func(args ...V) {
		defer func() {
			if r := recover(); r != nil && onPanic != nil {
				onPanic(wrapPanic(r))
			}
		}()

		listener.Call(args...)
	})
}
