package diag

import "strings"

// Message is a diagnostic text with optional chained details
type Message struct {
	Text string
	Next []Message
}

// NewMessage creates a message with chained details
func NewMessage(text string, next ...Message) Message {
	return Message{Text: text, Next: next}
}

// String returns the head text only
func (m Message) String() string {
	return m.Text
}

// Flatten returns the head text followed by every chained detail, indented by depth
func (m Message) Flatten() string {
	builder := &strings.Builder{}
	m.flatten(builder, 0)
	return builder.String()
}

func (m Message) flatten(builder *strings.Builder, depth int) {
	if depth > 0 {
		builder.WriteByte('\n')
		builder.WriteString(strings.Repeat("  ", depth))
	}
	builder.WriteString(m.Text)
	for _, next := range m.Next {
		next.flatten(builder, depth+1)
	}
}
