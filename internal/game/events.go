package game

import "time"

type EventType int

const (
	EventPhaseChanged EventType = iota
	EventHumanDied
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventPhaseChanged:
		return "phase_changed"
	case EventHumanDied:
		return "human_died"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	At    time.Time
	Phase Phase
	Cell  Cell       // human head for EventHumanDied
	Cause MoveResult // EventHumanDied only
	Tick  uint64
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the emitting goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
