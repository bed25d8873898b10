// internal/client/models/models.go
package models

type Sender int

const (
	Local Sender = iota
	Remote
)

func (s Sender) String() string {
	if s == Local {
		return "me"
	}
	return "them"
}

type Message struct {
	ID     int
	Sender Sender
	Text   string
}

func (m Message) IsLocal() bool {
	return m.Sender == Local
}

type (
	// ReplyReceived carries a simulated message from the other side.
	ReplyReceived struct {
		Text string
	}

	// MessageInserted is emitted after every append so the view can animate it.
	MessageInserted struct {
		Index   int
		Message Message
	}

	InsertSettled struct {
		ID int
	}

	ErrorMsg struct {
		Error string
	}
)
