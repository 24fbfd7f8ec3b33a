package session

import "gridsnake/pkg/snake"

// EventType identifies what happened inside a session.
type EventType int

const (
	// EventTicked fires after every simulation step, including collisions.
	EventTicked EventType = iota
	// EventFoodEaten fires when the snake grows.
	EventFoodEaten
	// EventHighScore fires when the persisted record is raised.
	EventHighScore
	// EventFinished fires once when the game ends.
	EventFinished
	// EventRestarted fires when a fresh game replaces a finished one.
	EventRestarted
)

// Event carries the session state at the time it was emitted.
type Event struct {
	Type      EventType
	Outcome   snake.Outcome
	Score     int
	HighScore int
	Cause     snake.Cause
}

type EventHandler func(Event)

// EventBus fans events out to subscribers synchronously, in subscription order.
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
