package tui

import (
	"strings"

	"chatbox/internal/client/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	bubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1)

	meStyle   = bubbleStyle.Background(lipgloss.Color("#874BFD"))
	themStyle = bubbleStyle.Background(lipgloss.Color("#383838"))

	// freshly inserted bubbles, until their highlight settles
	meFreshStyle   = meStyle.Background(lipgloss.Color("#FF87D7")).Bold(true)
	themFreshStyle = themStyle.Background(lipgloss.Color("#666666")).Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	sendStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#874BFD"))

	sendDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

const bannerText = "↓ New messages (ctrl+n)"

func bubbleFor(msg models.Message, fresh bool) lipgloss.Style {
	switch {
	case msg.IsLocal() && fresh:
		return meFreshStyle
	case msg.IsLocal():
		return meStyle
	case fresh:
		return themFreshStyle
	default:
		return themStyle
	}
}

// renderMessages lays the list out top to bottom, mine on the right and
// theirs on the left. Bubbles wrap at two thirds of width.
func renderMessages(messages []models.Message, fresh map[int]bool, width int) string {
	if width <= 0 {
		width = 80
	}
	maxBubble := width * 2 / 3
	if maxBubble < 8 {
		maxBubble = width
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		style := bubbleFor(msg, fresh[msg.ID])
		if lipgloss.Width(msg.Text)+style.GetHorizontalFrameSize() > maxBubble {
			style = style.Width(maxBubble)
		}
		bubble := style.Render(msg.Text)

		pos := lipgloss.Left
		if msg.IsLocal() {
			pos = lipgloss.Right
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, pos, bubble))
	}
	return strings.Join(lines, "\n")
}

func renderSendControl(enabled bool) string {
	if enabled {
		return sendStyle.Render("[send]")
	}
	return sendDisabledStyle.Render("[send]")
}
