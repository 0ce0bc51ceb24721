package libevents

type (
	// Publisher is the emitting half of a Registry.
	Publisher[K comparable, V any] interface {
		// Emit synchronously calls the listeners registered for event and reports
		// whether there were any.
		Emit(event K, args ...V) bool
	}

	// Subscriber is the registering half of a Registry.
	Subscriber[K comparable, V any] interface {
		OnceRegistrar[K, V]

		// OnFunc registers fn for every emission of event.
		OnFunc(event K, fn func(args ...V))

		// Subscribe registers fn for every emission of event and returns its handle.
		Subscribe(event K, fn func(args ...V)) *Listener[V]

		// SubscribeOnce registers fn for the next emission of event and returns its handle.
		SubscribeOnce(event K, fn func(args ...V)) *Listener[V]

		// Off removes the given listeners from event, or all of them when none is given.
		Off(event K, listeners ...*Listener[V]) bool
	}

	// Registry is an event emitter both sides can be given to.
	Registry[K comparable, V any] interface {
		Publisher[K, V]
		Subscriber[K, V]

		// ListenerCount returns the number of entries registered for event.
		ListenerCount(event K) int

		// Close removes all listeners for all events.
		Close()
	}
)

var (
	_ Registry[string, any] = (*Emitter[string, any])(nil)
	_ Registry[string, any] = NoopEmitter[string, any]{}
)
