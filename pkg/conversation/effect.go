package conversation

// Event is one user input: either a typed text submission or a discrete UI
// selection. Exactly one field is set.
type Event struct {
	Text   string
	Option string
}

func TextEvent(text string) Event { return Event{Text: text} }
func OptionEvent(id string) Event { return Event{Option: id} }
func (e Event) IsOption() bool    { return e.Option != "" }

// Message is one outbound transcript line. Rich marks content the widget may
// render with basic markup (lists, links).
type Message struct {
	Text string `json:"text"`
	Rich bool   `json:"rich,omitempty"`
}

// Option is one selectable button the widget presents.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Effect is one outbound presentation instruction: deliver a message, or
// deliver a set of selectable options and await a selection.
type Effect struct {
	Message *Message `json:"message,omitempty"`
	Options []Option `json:"options,omitempty"`
}

func say(text string) Effect {
	return Effect{Message: &Message{Text: text}}
}

func sayRich(text string) Effect {
	return Effect{Message: &Message{Text: text, Rich: true}}
}

func offer(options ...Option) Effect {
	return Effect{Options: options}
}
