package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chatbox/internal/client/models"
)

var (
	local  = models.Message{ID: 4, Sender: models.Local, Text: "hi"}
	remote = models.Message{ID: 4, Sender: models.Remote, Text: "swaggy"}

	atBottom   = Position{Offset: 20, Max: 20}
	scrolledUp = Position{Offset: 3, Max: 20}
)

func TestPosition_AtAnchor(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"fits on screen", Position{Offset: 0, Max: 0}, true},
		{"at bottom", Position{Offset: 10, Max: 10}, true},
		{"within tolerance", Position{Offset: 9, Max: 10}, true},
		{"just outside tolerance", Position{Offset: 8, Max: 10}, false},
		{"at top of long list", Position{Offset: 0, Max: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.pos.AtAnchor(DefaultTolerance))
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		event Event
		want  State
	}{
		{"local append while away", Settled, Appended{Sender: models.Local}, Settled},
		{"local append clears pending", PendingNewMessages, Appended{Sender: models.Local}, Settled},
		{"remote append at anchor", Settled, Appended{Sender: models.Remote, AtAnchor: true}, Settled},
		{"remote append while away", Settled, Appended{Sender: models.Remote}, PendingNewMessages},
		{"remote append stays pending", PendingNewMessages, Appended{Sender: models.Remote}, PendingNewMessages},
		{"reaching anchor", PendingNewMessages, ReachedAnchor{}, Settled},
		{"reaching anchor when settled", Settled, ReachedAnchor{}, Settled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Transition(tt.from, tt.event))
		})
	}
}

func TestController_StartsSettled(t *testing.T) {
	c := NewController(DefaultTolerance)

	require.Equal(t, Settled, c.State())
	require.False(t, c.BannerVisible())
	_, ok := c.LastMutationIndex()
	require.False(t, ok)
}

func TestController_LocalAppendAlwaysScrolls(t *testing.T) {
	for _, pos := range []Position{atBottom, scrolledUp} {
		c := NewController(DefaultTolerance)

		d := c.OnAppend(3, local, pos)

		require.True(t, d.ScrollToAnchor)
		require.Equal(t, Settled, d.State)
		require.False(t, c.BannerVisible())
	}
}

func TestController_RemoteAppendWhileAway(t *testing.T) {
	c := NewController(DefaultTolerance)

	d := c.OnAppend(3, remote, scrolledUp)

	require.False(t, d.ScrollToAnchor)
	require.Equal(t, PendingNewMessages, d.State)
	require.True(t, c.BannerVisible())
	idx, ok := c.LastMutationIndex()
	require.True(t, ok)
	require.Equal(t, 3, idx)
}

func TestController_RemoteAppendAtBottomFollows(t *testing.T) {
	c := NewController(DefaultTolerance)

	d := c.OnAppend(3, remote, atBottom)

	require.True(t, d.ScrollToAnchor)
	require.False(t, c.BannerVisible())
}

func TestController_ScrollDismissesOnlyAtAnchor(t *testing.T) {
	c := NewController(DefaultTolerance)
	c.OnAppend(3, remote, scrolledUp)

	c.OnScroll(Position{Offset: 10, Max: 20})
	require.True(t, c.BannerVisible())

	c.OnScroll(Position{Offset: 19, Max: 20})
	require.False(t, c.BannerVisible())
}

func TestController_JumpToAnchor(t *testing.T) {
	c := NewController(DefaultTolerance)
	c.OnAppend(3, remote, scrolledUp)

	c.JumpToAnchor()

	require.Equal(t, Settled, c.State())
}

func TestController_LocalAppendClearsPending(t *testing.T) {
	c := NewController(DefaultTolerance)
	c.OnAppend(3, remote, scrolledUp)

	c.OnAppend(4, local, scrolledUp)

	require.Equal(t, Settled, c.State())
}

func TestNewController_NegativeToleranceUsesDefault(t *testing.T) {
	require.Equal(t, DefaultTolerance, NewController(-5).tolerance)
}
