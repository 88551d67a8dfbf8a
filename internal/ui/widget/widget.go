// Package widget defines the rendering and interaction contract every pane
// hosted inside the tab layer must satisfy, together with the Core state
// (geometry and log sink) those panes share.
package widget

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Widget is the capability a pane must implement to be hosted behind the tab
// container. The container delegates to these methods and never re-derives
// pane-internal content itself.
type Widget interface {
	// Core returns the shared geometry and log sink.
	Core() *Core

	// RenderHeader returns the pane's header line.
	RenderHeader() (string, error)

	// RenderFooter returns the pane's footer line.
	RenderFooter() (string, error)

	// Drawlist returns a fully-formed, ready-to-paint representation of
	// the pane's current state.
	Drawlist() (string, error)

	// Refresh re-derives any cached display state from current geometry
	// and content. Must be safe to call repeatedly.
	Refresh() error

	// OnKey processes one key event.
	OnKey(tea.KeyMsg) error
}

// Core holds the display geometry shared by the container and its panes,
// plus the sink for failures that are logged rather than propagated. The
// host sets the size from tea.WindowSizeMsg; everything else only reads it.
type Core struct {
	width  int
	height int
	logger *log.Logger
}

// NewCore returns a Core with zero geometry. A nil logger is replaced with
// a discarding one so call sites never need to check.
func NewCore(logger *log.Logger) *Core {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Core{logger: logger}
}

// SetSize records the content area available to panes.
func (c *Core) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Width returns the horizontal extent available for rendering.
func (c *Core) Width() int { return c.width }

// Height returns the vertical extent available for rendering.
func (c *Core) Height() int { return c.height }

// Logger returns the error-log sink.
func (c *Core) Logger() *log.Logger { return c.logger }
