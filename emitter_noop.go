package libevents

// NoopEmitter is a Registry that drops every registration and never has listeners.
type NoopEmitter[K comparable, V any] struct{}

// Emit never calls anything and returns false.
func (NoopEmitter[K, V]) Emit(K, ...V) bool { return false }

// OnFunc discards the registration.
func (NoopEmitter[K, V]) OnFunc(K, func(...V)) {}

// OnceFunc discards the registration, so a Future built on it never resolves.
func (NoopEmitter[K, V]) OnceFunc(K, func(...V)) {}

// Subscribe returns a handle for fn without registering it.
func (NoopEmitter[K, V]) Subscribe(_ K, fn func(...V)) *Listener[V] { return NewListener(fn) }

// SubscribeOnce returns a handle for fn without registering it.
func (NoopEmitter[K, V]) SubscribeOnce(_ K, fn func(...V)) *Listener[V] { return NewListener(fn) }

// Off returns false, there is never anything to remove.
func (NoopEmitter[K, V]) Off(K, ...*Listener[V]) bool { return false }

// ListenerCount always returns 0.
func (NoopEmitter[K, V]) ListenerCount(K) int { return 0 }

// Close does nothing.
func (NoopEmitter[K, V]) Close() {}
