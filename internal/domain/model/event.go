package model

// EventKind identifies the build lifecycle moment a card is built for.
type EventKind int

const (
	EventStarted EventKind = iota
	EventCompleted
	EventMessage
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	case EventMessage:
		return "message"
	default:
		return "unknown"
	}
}

// FactDefinition is a caller supplied fact. Template is used as the value.
type FactDefinition struct {
	Name     string
	Template string
}

// MessageParams carries the input of a custom message step.
type MessageParams struct {
	Message string
	Status  string
	Color   string
}

// Event is a single notification request.
type Event struct {
	Kind    EventKind
	Facts   []FactDefinition
	Message MessageParams
}

// Started returns a started event.
func Started(facts ...FactDefinition) Event {
	return Event{Kind: EventStarted, Facts: facts}
}

// Completed returns a completed event.
func Completed(facts ...FactDefinition) Event {
	return Event{Kind: EventCompleted, Facts: facts}
}

// Message returns a custom message event.
func Message(params MessageParams, facts ...FactDefinition) Event {
	return Event{Kind: EventMessage, Message: params, Facts: facts}
}
