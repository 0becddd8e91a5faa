package float

import "sync/atomic"

// State wraps a value and notifies bindings when it changes. The Coordinator
// publishes its phase and latest Position through State values, and
// renderers or other observers subscribe with Bind.
//
// State is not safe for concurrent use. Like the Coordinator it belongs to a
// single UI goroutine; platform callbacks must be delivered there.
//
// Example usage:
//
//	pos := float.NewState(float.Position{})
//	unbind := pos.Bind(func(p float.Position) {
//	    panel.Move(p.Left, p.Top)
//	})
//	pos.Set(float.Position{Top: 4, Left: 2}) // runs the binding
//	unbind()
type State[T any] struct {
	value    T
	bindings []*binding[T]
	batch    *Batcher
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// globalBindingID is a global counter for generating unique binding IDs.
// This keeps binding IDs unique across all State instances sharing a Batcher.
var globalBindingID atomic.Uint64

// NewState creates a new state with the given initial value.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// NewBatchedState creates a state whose bindings are deferred while b is
// inside a Batch call.
func NewBatchedState[T any](b *Batcher, initial T) *State[T] {
	return &State[T]{value: initial, batch: b}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	return s.value
}

// Set updates the value and notifies all bindings in registration order.
// If the state's Batcher is inside a Batch call, binding execution is
// deferred until the outermost batch completes.
func (s *State[T]) Set(v T) {
	s.value = v

	// Drop unbound bindings so they don't accumulate.
	active := s.bindings[:0]
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	clear(s.bindings[len(active):])
	s.bindings = active

	if s.batch != nil && s.batch.depth > 0 {
		for _, b := range active {
			s.batch.enqueue(b.id, func() {
				if b.active {
					b.fn(v)
				}
			})
		}
		return
	}

	// Copy so bindings that Bind or Unbind during notification don't
	// disturb this pass.
	snapshot := append([]*binding[T](nil), active...)
	for _, b := range snapshot {
		if b.active {
			b.fn(v)
		}
	}
}

// Update applies a function to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Bind registers a function to be called when the value changes.
// Returns an Unbind handle to remove the binding.
func (s *State[T]) Bind(fn func(T)) Unbind {
	b := &binding[T]{id: globalBindingID.Add(1), fn: fn, active: true}
	s.bindings = append(s.bindings, b)

	return func() {
		b.active = false
	}
}

// Batcher coalesces binding callbacks across the States created with it.
// The zero value is ready to use.
type Batcher struct {
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

func (b *Batcher) enqueue(id uint64, fn func()) {
	if b.pending == nil {
		b.pending = make(map[uint64]func())
	}
	if _, exists := b.pending[id]; !exists {
		b.pendingOrder = append(b.pendingOrder, id)
	}
	b.pending[id] = fn
}

// Batch executes fn and defers all binding callbacks until fn returns.
//
// When the same binding is triggered multiple times during a batch, it only
// executes once with the final value. Bindings run in the order they were
// first triggered. Nested Batch calls are supported; bindings only fire when
// the outermost Batch completes. If fn panics, pending callbacks are dropped
// and the batch state is reset before the panic propagates.
func (b *Batcher) Batch(fn func()) {
	b.depth++
	completed := false

	defer func() {
		b.depth--
		if b.depth > 0 {
			return
		}
		pending, order := b.pending, b.pendingOrder
		b.pending = nil
		b.pendingOrder = nil
		if !completed {
			return
		}
		for _, id := range order {
			if cb, ok := pending[id]; ok {
				cb()
			}
		}
	}()

	fn()
	completed = true
}
