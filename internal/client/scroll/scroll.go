// Package scroll decides whether the chat list follows new messages or
// shows the "new messages" prompt.
//
// The anchor edge is the bottom of the list, where the newest message sits.
package scroll

import "chatbox/internal/client/models"

type State int

const (
	Settled State = iota
	PendingNewMessages
)

func (s State) String() string {
	switch s {
	case Settled:
		return "settled"
	case PendingNewMessages:
		return "pending"
	default:
		return "unknown"
	}
}

// DefaultTolerance is how many lines short of the bottom still count as
// caught up.
const DefaultTolerance = 1

// Position is a scroll offset in lines together with the largest offset the
// content allows.
type Position struct {
	Offset int
	Max    int
}

// AtAnchor reports whether the position is within tolerance lines of the
// bottom. Content that fits on screen is always at the anchor.
func (p Position) AtAnchor(tolerance int) bool {
	if p.Max <= 0 {
		return true
	}
	return p.Max-p.Offset <= tolerance
}

type Event interface {
	isEvent()
}

// Appended is a store mutation as seen from the viewport.
type Appended struct {
	Sender   models.Sender
	AtAnchor bool
}

// ReachedAnchor fires when the user scrolls or jumps to the bottom.
type ReachedAnchor struct{}

func (Appended) isEvent()      {}
func (ReachedAnchor) isEvent() {}

// Transition is the state machine behind the "new messages" prompt.
func Transition(s State, e Event) State {
	switch e := e.(type) {
	case Appended:
		if e.Sender == models.Local || e.AtAnchor {
			return Settled
		}
		return PendingNewMessages
	case ReachedAnchor:
		return Settled
	}
	return s
}

// Decision is what the view must do after an append.
type Decision struct {
	ScrollToAnchor bool
	State          State
}

// Controller holds the viewport state derived from store mutations.
type Controller struct {
	state             State
	tolerance         int
	lastMutationIndex int
	hasMutation       bool
}

func NewController(tolerance int) *Controller {
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}
	return &Controller{state: Settled, tolerance: tolerance}
}

// OnAppend records the message appended at index. pos must be measured
// before the new message is laid out.
func (c *Controller) OnAppend(index int, msg models.Message, pos Position) Decision {
	c.lastMutationIndex = index
	c.hasMutation = true
	c.state = Transition(c.state, Appended{Sender: msg.Sender, AtAnchor: pos.AtAnchor(c.tolerance)})
	return Decision{
		ScrollToAnchor: c.state == Settled,
		State:          c.state,
	}
}

// OnScroll dismisses the prompt once pos reaches the bottom.
func (c *Controller) OnScroll(pos Position) {
	if pos.AtAnchor(c.tolerance) {
		c.state = Transition(c.state, ReachedAnchor{})
	}
}

// JumpToAnchor is the explicit "show newest" action.
func (c *Controller) JumpToAnchor() {
	c.state = Transition(c.state, ReachedAnchor{})
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) BannerVisible() bool {
	return c.state == PendingNewMessages
}

func (c *Controller) LastMutationIndex() (int, bool) {
	return c.lastMutationIndex, c.hasMutation
}
