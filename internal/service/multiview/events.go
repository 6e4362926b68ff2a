package multiview

import "sync"

// Slice names a logical part of the session state. Subscribers pick the
// slices they care about so unrelated consumers are not woken on unrelated
// changes.
type Slice string

const (
	SliceLayout  Slice = "layout"
	SliceContent Slice = "content"
	SlicePlayer  Slice = "player"
	SlicePool    Slice = "pool"
	SlicePreset  Slice = "preset"
)

type Event struct {
	Slice   Slice  `json:"slice"`
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type subscriber struct {
	ch     chan Event
	slices map[Slice]bool
}

type broker struct {
	mu     sync.Mutex
	subs   map[int]subscriber
	nextID int
}

func newBroker() *broker {
	return &broker{subs: make(map[int]subscriber)}
}

// Subscribe registers interest in the given slices; no slices means all.
func (b *broker) Subscribe(slices ...Slice) (int, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sliceSet := make(map[Slice]bool, len(slices))
	for _, slice := range slices {
		sliceSet[slice] = true
	}

	b.nextID++
	id := b.nextID
	ch := make(chan Event, 64)
	b.subs[id] = subscriber{ch: ch, slices: sliceSet}

	return id, ch
}

func (b *broker) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		close(sub.ch)
		delete(b.subs, id)
	}
}

// publish delivers ev to every matching subscriber without blocking; a slow
// subscriber with a full buffer misses the event.
func (b *broker) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		if len(sub.slices) > 0 && !sub.slices[ev.Slice] {
			continue
		}

		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (s *service) Subscribe(slices ...Slice) (int, <-chan Event) {
	return s.broker.Subscribe(slices...)
}

func (s *service) Unsubscribe(id int) {
	s.broker.Unsubscribe(id)
}

func (s *service) publish(slice Slice, eventType string, payload any) {
	s.broker.publish(Event{Slice: slice, Type: eventType, Payload: payload})
}
