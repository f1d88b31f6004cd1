package event

// Handler receives a published event.
type Handler func(Event)

type subscription struct {
	kind    Kind
	all     bool
	handler Handler
}

// Bus is a process-local publish/subscribe channel. Publish dispatches
// synchronously: every matching subscriber runs, in subscription order,
// before Publish returns. Handlers may publish further events.
//
// A nil *Bus is a valid, absent bus: all methods are no-ops.
// Bus is not safe for concurrent use; one match loop owns it.
type Bus struct {
	subs []subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for events of kind k.
func (b *Bus) Subscribe(k Kind, h Handler) {
	if b == nil || h == nil {
		return
	}
	b.subs = append(b.subs, subscription{kind: k, handler: h})
}

// SubscribeAll registers h for every event kind.
func (b *Bus) SubscribeAll(h Handler) {
	if b == nil || h == nil {
		return
	}
	b.subs = append(b.subs, subscription{all: true, handler: h})
}

// Publish delivers e to the current subscribers. Subscriptions added while
// dispatching only see later events.
func (b *Bus) Publish(e Event) {
	if b == nil || e == nil {
		return
	}
	subs := b.subs[:len(b.subs):len(b.subs)]
	kind := e.Kind()
	for _, s := range subs {
		if s.all || s.kind == kind {
			s.handler(e)
		}
	}
}

// Len returns the number of registered subscriptions.
func (b *Bus) Len() int {
	if b == nil {
		return 0
	}
	return len(b.subs)
}

// SubscribeTo registers a handler typed to a single payload struct.
func SubscribeTo[T Event](b *Bus, fn func(T)) {
	if fn == nil {
		return
	}
	var zero T
	b.Subscribe(zero.Kind(), func(e Event) {
		if v, ok := e.(T); ok {
			fn(v)
		}
	})
}
