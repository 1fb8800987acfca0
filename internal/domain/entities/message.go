package entities

import "time"

// Author identifies who wrote a chat message.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Message is one entry of a chat transcript. Display only, never persisted.
type Message struct {
	Author Author
	Text   string
	At     time.Time
}

// IsAssistant reports whether the assistant wrote the message.
func (m Message) IsAssistant() bool {
	return m.Author == AuthorAssistant
}
