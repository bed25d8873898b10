// internal/client/tui/app.go
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"chatbox/internal/client/config"
	"chatbox/internal/client/logger"
	"chatbox/internal/client/models"
	"chatbox/internal/client/remote"
	"chatbox/internal/client/scroll"
	"chatbox/internal/client/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// header, banner line and the bordered input box
const chromeHeight = 5

// InsertHook is called for every message added to the list, with its index.
type InsertHook func(index int, msg models.Message)

type Option func(*Model)

func WithInsertHook(fn InsertHook) Option {
	return func(m *Model) {
		m.onInsert = fn
	}
}

type Model struct {
	viewport viewport.Model
	input    textinput.Model
	help     help.Model
	keys     keyMap
	store    *store.Store
	scroll   *scroll.Controller
	replier  remote.Replier
	cfg      config.Config
	fresh    map[int]bool
	onInsert InsertHook
	width    int
	height   int
	err      error
}

func NewModel(cfg config.Config, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = "Aa"
	input.Focus()
	input.CharLimit = 1000

	// get term size
	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		width = 80 // Fallback
		height = 24
	}

	var seeds []models.Message
	if cfg.Seed {
		seeds = store.DefaultSeeds()
	}

	m := Model{
		viewport: viewport.New(width, height-chromeHeight),
		input:    input,
		help:     help.New(),
		keys:     defaultKeyMap(),
		store:    store.New(seeds...),
		scroll:   scroll.NewController(cfg.ScrollTolerance),
		replier:  remote.NewReplier(cfg),
		cfg:      cfg,
		fresh:    make(map[int]bool),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.resize(width, height)
	m.viewport.GotoBottom()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Send):
			return m, m.send()

		case key.Matches(msg, m.keys.Reply):
			logger.Debug("reply requested, due in %s", m.replier.Delay)
			return m, m.replier.Reply()

		case key.Matches(msg, m.keys.Newest):
			m.jumpToNewest()
			return m, nil

		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			m.scroll.OnScroll(m.position())
			return m, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.scroll.OnScroll(m.position())
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.scroll.OnScroll(m.position())
		if m.scroll.State() == scroll.Settled {
			m.viewport.GotoBottom()
		}

	case models.ReplyReceived:
		reply := m.store.Append(models.Remote, msg.Text)
		return m, m.inserted(reply)

	case models.MessageInserted:
		logger.Debug("message %d inserted at %d", msg.Message.ID, msg.Index)
		return m, nil

	case models.InsertSettled:
		delete(m.fresh, msg.ID)
		m.refresh()
		return m, nil

	case models.ErrorMsg:
		m.err = fmt.Errorf("%s", msg.Error)
		logger.Error("error received: %s", msg.Error)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	switch {
	case m.err != nil:
		sb.WriteString(errorStyle.Render(m.err.Error()))
	case m.scroll.BannerVisible():
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bannerStyle.Render(bannerText)))
	}
	sb.WriteString("\n")

	control := renderSendControl(store.CanSend(m.input.Value()))
	sb.WriteString(inputStyle.Render(m.input.View() + " " + control))

	return sb.String()
}

// Messages returns the current list, oldest first.
func (m Model) Messages() []models.Message {
	return m.store.Messages()
}

// State reports whether the list is caught up or has unseen messages.
func (m Model) State() scroll.State {
	return m.scroll.State()
}

func (m *Model) send() tea.Cmd {
	msg, ok := m.store.Send(m.input.Value())
	if !ok {
		return nil
	}
	m.input.Reset()

	cmds := []tea.Cmd{m.inserted(msg)}
	if m.cfg.AutoReply {
		cmds = append(cmds, m.replier.Reply())
	}
	return tea.Batch(cmds...)
}

// inserted reacts to a message that was just appended to the store. The
// scroll position is read before the new content is laid out.
func (m *Model) inserted(msg models.Message) tea.Cmd {
	index := m.store.Len() - 1
	d := m.scroll.OnAppend(index, msg, m.position())

	m.fresh[msg.ID] = true
	m.refresh()
	if d.ScrollToAnchor {
		m.viewport.GotoBottom()
	}
	if at, ok := m.scroll.LastMutationIndex(); ok {
		logger.Info("message %d from %s appended at %d, state=%s", msg.ID, msg.Sender, at, d.State)
	}

	if m.onInsert != nil {
		m.onInsert(index, msg)
	}

	event := models.MessageInserted{Index: index, Message: msg}
	return tea.Batch(
		func() tea.Msg { return event },
		m.settle(msg.ID),
	)
}

func (m *Model) settle(id int) tea.Cmd {
	if m.cfg.InsertHighlight <= 0 {
		delete(m.fresh, id)
		m.refresh()
		return nil
	}
	return tea.Tick(m.cfg.InsertHighlight, func(time.Time) tea.Msg {
		return models.InsertSettled{ID: id}
	})
}

func (m *Model) jumpToNewest() {
	m.viewport.GotoBottom()
	m.scroll.JumpToAnchor()
}

func (m Model) position() scroll.Position {
	maxOffset := m.viewport.TotalLineCount() - m.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	return scroll.Position{Offset: m.viewport.YOffset, Max: maxOffset}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight

	// border, padding, prompt and the send control
	inputWidth := width - 16
	if inputWidth < 1 {
		inputWidth = 1
	}
	m.input.Width = inputWidth
	m.help.Width = width

	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(renderMessages(m.store.Messages(), m.fresh, m.viewport.Width))
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("Chat")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", m.help.ShortHelpView(m.keys.ShortHelp()))
}
