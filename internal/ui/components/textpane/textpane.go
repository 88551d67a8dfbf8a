// Package textpane implements a scrollable text pane, the concrete widget
// the demo application hosts in its tabs.
package textpane

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabview/internal/ui/keys"
	"tabview/internal/ui/theme"
	"tabview/internal/ui/widget"
)

// Pane is a read-only text buffer behind a viewport. All panes share the
// container's Core, so a single window resize resizes every tab.
type Pane struct {
	core     *widget.Core
	title    string
	content  string
	viewport viewport.Model
}

// New creates a pane over static content. Call Refresh (directly or through
// the container) before the first Drawlist so the viewport picks up the
// current geometry.
func New(core *widget.Core, title, content string) *Pane {
	return &Pane{
		core:     core,
		title:    title,
		content:  content,
		viewport: viewport.New(0, 0),
	}
}

// Title returns the pane's display label.
func (p *Pane) Title() string { return p.title }

// Core implements widget.Widget.
func (p *Pane) Core() *widget.Core { return p.core }

// RenderHeader returns the styled pane title.
func (p *Pane) RenderHeader() (string, error) {
	return theme.HeaderStyle.Render(p.title), nil
}

// RenderFooter returns the scroll position indicator.
func (p *Pane) RenderFooter() (string, error) {
	pct := p.viewport.ScrollPercent() * 100
	return theme.FooterStyle.Render(fmt.Sprintf("%s %3.0f%%", p.title, pct)), nil
}

// Drawlist returns the visible slice of the buffer, ready to paint.
func (p *Pane) Drawlist() (string, error) {
	if p.viewport.Width == 0 {
		return "Loading...", nil
	}
	return p.viewport.View(), nil
}

// Refresh resizes the viewport to the shared geometry and re-wraps the
// content. Safe to call any number of times.
func (p *Pane) Refresh() error {
	w, h := p.core.Width(), p.core.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	p.viewport.Width = w
	p.viewport.Height = h
	p.viewport.SetContent(lipgloss.NewStyle().Width(w).Render(p.content))
	return nil
}

// OnKey handles pane-level scrolling. Unrecognized keys are ignored.
func (p *Pane) OnKey(msg tea.KeyMsg) error {
	switch {
	case key.Matches(msg, keys.Keys.ScrollUp):
		p.viewport.ScrollUp(1)
	case key.Matches(msg, keys.Keys.ScrollDown):
		p.viewport.ScrollDown(1)
	case key.Matches(msg, keys.Keys.GotoTop):
		p.viewport.GotoTop()
	case key.Matches(msg, keys.Keys.GotoBottom):
		p.viewport.GotoBottom()
	}
	return nil
}
