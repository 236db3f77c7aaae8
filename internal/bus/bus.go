// Package bus propagates the current selections (period, subject, acting
// user, rosters) to independent subscribers.
//
// Each topic keeps only its latest value. A new subscriber immediately
// receives that value, then every later publish in publish order.
// Callbacks run synchronously on the publishing goroutine and must not
// publish or subscribe to the topic they are handling.
package bus

import (
	"sync"
)

// Topic is a typed key on the Bus. Two topics with the same name share
// state, so names must be unique across the process.
type Topic[T any] struct {
	name string
}

// NewTopic declares a typed topic.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

// Name returns the topic name.
func (t Topic[T]) Name() string {
	return t.name
}

type subscriber struct {
	id int
	fn func(any)
}

type topicState struct {
	// deliver serializes publishes so every subscriber observes them in order.
	deliver sync.Mutex

	mu     sync.Mutex
	value  any
	set    bool
	subs   []subscriber
	nextID int
}

// Bus is a multi-topic broadcast channel with replay of the latest value.
type Bus struct {
	mu     sync.Mutex
	topics map[string]*topicState
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{topics: make(map[string]*topicState)}
}

func (b *Bus) topic(name string) *topicState {
	b.mu.Lock()
	defer b.mu.Unlock()
	ts, ok := b.topics[name]
	if !ok {
		ts = &topicState{}
		b.topics[name] = ts
	}
	return ts
}

// Handle is returned by Subscribe. Release it to stop receiving updates.
type Handle struct {
	once    sync.Once
	release func()
}

// Release unsubscribes. It is safe to call more than once.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.once.Do(h.release)
}

// Publish replaces the topic's value and delivers it to every subscriber.
func Publish[T any](b *Bus, t Topic[T], v T) {
	ts := b.topic(t.name)

	ts.deliver.Lock()
	defer ts.deliver.Unlock()

	ts.mu.Lock()
	ts.value = v
	ts.set = true
	subs := make([]subscriber, len(ts.subs))
	copy(subs, ts.subs)
	ts.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers fn for the topic. If a value was already published,
// fn receives it before Subscribe returns.
func Subscribe[T any](b *Bus, t Topic[T], fn func(T)) *Handle {
	ts := b.topic(t.name)

	// Holding the delivery lock keeps the replay ordered before any
	// concurrent publish reaches this subscriber.
	ts.deliver.Lock()
	defer ts.deliver.Unlock()

	ts.mu.Lock()
	id := ts.nextID
	ts.nextID++
	ts.subs = append(ts.subs, subscriber{id: id, fn: func(v any) { fn(v.(T)) }})
	value, set := ts.value, ts.set
	ts.mu.Unlock()

	if set {
		fn(value.(T))
	}

	return &Handle{release: func() {
		ts.mu.Lock()
		defer ts.mu.Unlock()
		for i, s := range ts.subs {
			if s.id == id {
				ts.subs = append(ts.subs[:i], ts.subs[i+1:]...)
				return
			}
		}
	}}
}

// Current returns the latest published value. The second result is false
// when nothing was published yet; callers must treat that as "not selected".
func Current[T any](b *Bus, t Topic[T]) (T, bool) {
	ts := b.topic(t.name)
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if !ts.set {
		var zero T
		return zero, false
	}
	return ts.value.(T), true
}

// CurrentOr returns the latest value or def when nothing was published.
func CurrentOr[T any](b *Bus, t Topic[T], def T) T {
	if v, ok := Current(b, t); ok {
		return v
	}
	return def
}

// Clear forgets the topic's value without notifying subscribers, so later
// subscribers get no replay until the next publish.
func Clear[T any](b *Bus, t Topic[T]) {
	ts := b.topic(t.name)
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.value = nil
	ts.set = false
}

// SubscriberCount reports how many handles are live on a topic.
func (b *Bus) SubscriberCount(name string) int {
	ts := b.topic(name)
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.subs)
}
