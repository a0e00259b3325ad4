package model

// Fact is a labeled value displayed within a card section.
type Fact struct {
	Name  string
	Value string
}

// Section is the single content block of a Card.
type Section struct {
	Title    string
	Subtitle string
	Facts    []Fact
}

// Action is a link the reader can follow from the card.
type Action struct {
	Name string
	URL  string
}

// Card is a transport-agnostic build notification handed to notifiers.
// A Card is built once per event and not modified afterwards.
type Card struct {
	Summary         string
	ThemeColor      string
	Section         Section
	PotentialAction []Action
}

// NewCard creates a card with the given summary and section.
func NewCard(summary string, section Section) Card {
	return Card{Summary: summary, Section: section}
}
