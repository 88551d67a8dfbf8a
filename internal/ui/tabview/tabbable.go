package tabview

import (
	"iter"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabview/internal/ui/keys"
	"tabview/internal/ui/widget"
)

// Tabbable supplies the tab-level semantics a host application layers on top
// of a TabView: how a tab is created and closed, what the tabs are called,
// and what happens to keys the tab layer does not claim.
type Tabbable interface {
	// NewTab creates and attaches a new pane. Failures (resource limits
	// and the like) are surfaced to the caller, never swallowed.
	NewTab() error

	// CloseTab removes the current tab. Closing the last remaining tab
	// fails with ErrLastTab.
	CloseTab() error

	// NextTab advances the active tab, wrapping past the end.
	NextTab() error

	// OnNextTab runs after a successful tab switch. An error here is
	// logged and discarded so the switch always completes; embed NopHooks
	// for the default no-op.
	OnNextTab() error

	// TabNames yields one display label per pane, in pane order. An empty
	// label renders as a placeholder.
	TabNames() iter.Seq[string]

	// ActiveWidget returns the currently active pane viewed through the
	// widget capability.
	ActiveWidget() (widget.Widget, error)

	// OnKeySub receives every key not claimed by a reserved chord.
	OnKeySub(tea.KeyMsg) error
}

// NopHooks provides the default no-op OnNextTab. Embed it in a Tabbable
// implementation that has no post-switch behavior.
type NopHooks struct{}

func (NopHooks) OnNextTab() error { return nil }

// Dispatch routes one key event: the fixed table of reserved chords is
// checked first (ctrl+t new tab, ctrl+w close tab, tab next tab), and every
// other key falls through to the handler's OnKeySub.
func Dispatch(t Tabbable, msg tea.KeyMsg) error {
	switch {
	case key.Matches(msg, keys.Keys.NewTab):
		return t.NewTab()
	case key.Matches(msg, keys.Keys.CloseTab):
		return t.CloseTab()
	case key.Matches(msg, keys.Keys.NextTab):
		return t.NextTab()
	default:
		return t.OnKeySub(msg)
	}
}
