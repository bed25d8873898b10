// internal/client/remote/replier.go
package remote

import (
	"time"

	"chatbox/internal/client/config"
	"chatbox/internal/client/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Replier stands in for the other participant. It never talks to a network;
// it just schedules a canned reply on the Bubble Tea loop.
type Replier struct {
	Text  string
	Delay time.Duration
}

func NewReplier(cfg config.Config) Replier {
	text := cfg.ReplyText
	if text == "" {
		text = config.Default().ReplyText
	}
	return Replier{Text: text, Delay: cfg.ReplyDelay}
}

// Reply returns a command that yields a models.ReplyReceived after Delay.
func (r Replier) Reply() tea.Cmd {
	msg := models.ReplyReceived{Text: r.Text}
	if r.Delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(r.Delay, func(time.Time) tea.Msg {
		return msg
	})
}
