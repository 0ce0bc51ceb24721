package libevents

import (
	"github.com/stretchr/testify/mock"
)

// mockRegistrar stands in for a foreign emitter exposing only a once-style method.
type mockRegistrar[K comparable, V any] struct {
	mock.Mock

	pending map[K][]func(args ...V)
}

func (m *mockRegistrar[K, V]) OnceFunc(event K, fn func(args ...V)) {
	m.MethodCalled("OnceFunc", event)
	if m.pending == nil {
		m.pending = make(map[K][]func(args ...V))
	}
	m.pending[event] = append(m.pending[event], fn)
}

func (m *mockRegistrar[K, V]) emit(event K, args ...V) {
	fns := m.pending[event]
	delete(m.pending, event)
	for _, fn := range fns {
		fn(args...)
	}
}
