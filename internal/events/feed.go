// Package events provides ordered, synchronous notification lists.
package events

// Feed delivers values of type T to its subscribers in subscription order.
// Delivery happens inside Emit; there is no queueing. The zero value is ready to use.
type Feed[T any] struct {
	handlers []handler[T]
	nextID   uint32
}

type handler[T any] struct {
	id uint32
	fn func(T)
}

// Subscription removes a handler registered with Feed.Subscribe.
type Subscription struct {
	remove func()
}

// Remove unregisters the handler. Calling it more than once, or on the zero value, is a no-op.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

// Subscribe registers fn. A nil fn is ignored and returns a zero Subscription.
func (f *Feed[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	f.nextID++
	id := f.nextID
	f.handlers = append(f.handlers, handler[T]{id: id, fn: fn})
	return Subscription{remove: func() { f.unsubscribe(id) }}
}

// unsubscribe rebuilds the slice so an Emit already ranging over the old one is unaffected.
func (f *Feed[T]) unsubscribe(id uint32) {
	for i := range f.handlers {
		if f.handlers[i].id == id {
			next := make([]handler[T], 0, len(f.handlers)-1)
			next = append(next, f.handlers[:i]...)
			f.handlers = append(next, f.handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every handler with v, in order. Handlers subscribed during Emit see the next value, not this one.
func (f *Feed[T]) Emit(v T) {
	for _, h := range f.handlers {
		h.fn(v)
	}
}

// Len returns the number of subscribers.
func (f *Feed[T]) Len() int {
	return len(f.handlers)
}
