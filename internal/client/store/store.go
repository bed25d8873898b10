// internal/client/store/store.go
package store

import (
	"strings"

	"chatbox/internal/client/models"
)

// Store is the ordered, append-only list of messages shown in the chat window.
type Store struct {
	messages []models.Message
}

// DefaultSeeds are the messages a fresh window opens with.
func DefaultSeeds() []models.Message {
	return []models.Message{
		{Sender: models.Local, Text: "gggg"},
		{Sender: models.Remote, Text: "swag"},
		{Sender: models.Local, Text: "yo"},
	}
}

// New builds a store from seeds, renumbering them 1..n in order.
func New(seeds ...models.Message) *Store {
	s := &Store{messages: make([]models.Message, 0, len(seeds))}
	for i, seed := range seeds {
		seed.ID = i + 1
		s.messages = append(s.messages, seed)
	}
	return s
}

// NextID returns one past the highest id in the store, or 1 when it is empty.
func (s *Store) NextID() int {
	maxID := 0
	for _, msg := range s.messages {
		if msg.ID > maxID {
			maxID = msg.ID
		}
	}
	return maxID + 1
}

// Append adds a message from sender. It never fails.
func (s *Store) Append(sender models.Sender, text string) models.Message {
	msg := models.Message{
		ID:     s.NextID(),
		Sender: sender,
		Text:   text,
	}
	s.messages = append(s.messages, msg)
	return msg
}

// CanSend reports whether text is acceptable for a local send.
func CanSend(text string) bool {
	return strings.TrimSpace(text) != ""
}

// Send appends a local message. Blank text leaves the store untouched and
// returns false.
func (s *Store) Send(text string) (models.Message, bool) {
	if !CanSend(text) {
		return models.Message{}, false
	}
	return s.Append(models.Local, text), true
}

func (s *Store) Messages() []models.Message {
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	return len(s.messages)
}
