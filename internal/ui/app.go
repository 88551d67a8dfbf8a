package ui

import (
	"errors"
	"fmt"
	"iter"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"tabview/internal/config"
	"tabview/internal/ui/components"
	"tabview/internal/ui/components/textpane"
	"tabview/internal/ui/helper"
	"tabview/internal/ui/keys"
	"tabview/internal/ui/tabview"
	"tabview/internal/ui/theme"
	"tabview/internal/ui/widget"
)

// Lines reserved around the pane content: composite header, footer, help.
const chromeLines = 3

const scratchTemplate = `Scratch note.

ctrl+t opens a new tab, ctrl+w closes this one and tab cycles
through the open tabs. Everything else lands in this pane:
j/k scroll, g/G jump to the top or bottom.
`

type model struct {
	cfg       *config.Config
	core      *widget.Core
	tabs      *tabview.TabView[*textpane.Pane]
	statusBar *components.StatusBar
	keys      *keys.KeyMap
	width     int
	height    int
	status    string
	nextNote  int

	tabview.NopHooks
}

// InitialModel builds the host model with one scratch tab already open.
func InitialModel(cfg *config.Config, logger *log.Logger) tea.Model {
	core := widget.NewCore(logger)
	m := &model{
		cfg:       cfg,
		core:      core,
		statusBar: components.NewStatusBar(),
		keys:      keys.Keys,
	}
	m.statusBar.SetBindings(m.keys.ShortBindings())
	m.tabs = tabview.New[*textpane.Pane](core, m)
	if err := m.NewTab(); err != nil {
		core.Logger().Error("opening initial tab failed", "err", err)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.SetWidth(msg.Width)
		m.core.SetSize(msg.Width, msg.Height-chromeLines)
		if err := m.tabs.Refresh(); err != nil {
			m.core.Logger().Error("refresh after resize failed", "err", err)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.status = ""
		if err := m.tabs.OnKey(msg); err != nil {
			if errors.Is(err, tabview.ErrLastTab) && m.cfg.Tabs.CloseLastQuits {
				return m, tea.Quit
			}
			m.status = err.Error()
		}
		return m, nil
	}

	return m, nil
}

func (m *model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header, err := m.tabs.RenderHeader()
	if err != nil {
		header = ""
	}
	body, err := m.tabs.Drawlist()
	if err != nil {
		body = ""
	}
	footer, err := m.tabs.RenderFooter()
	if err != nil {
		footer = ""
	}
	if m.status != "" {
		footer = helper.OverlayRight(footer, theme.ErrorStyle.Render(m.status), m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer, m.statusBar.View())
}

// NewTab implements tabview.Tabbable. It enforces the configured tab limit,
// appends a fresh scratch pane and makes it the active tab.
func (m *model) NewTab() error {
	if limit := m.cfg.Tabs.Max; limit > 0 && m.tabs.Len() >= limit {
		return fmt.Errorf("tab limit reached (%d)", limit)
	}
	m.nextNote++
	pane := textpane.New(m.core, fmt.Sprintf("note %d", m.nextNote), scratchTemplate)
	if err := m.tabs.Push(pane); err != nil {
		return err
	}
	return m.tabs.Select(m.tabs.Len() - 1)
}

// CloseTab implements tabview.Tabbable.
func (m *model) CloseTab() error {
	return m.tabs.CloseActive()
}

// NextTab implements tabview.Tabbable.
func (m *model) NextTab() error {
	return m.tabs.Next()
}

// TabNames implements tabview.Tabbable, yielding pane titles in tab order.
func (m *model) TabNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range m.tabs.Panes() {
			if !yield(p.Title()) {
				return
			}
		}
	}
}

// ActiveWidget implements tabview.Tabbable.
func (m *model) ActiveWidget() (widget.Widget, error) {
	return m.tabs.ActiveWidget()
}

// OnKeySub forwards unclaimed keys into the active pane.
func (m *model) OnKeySub(msg tea.KeyMsg) error {
	w, err := m.tabs.ActiveWidget()
	if err != nil {
		return err
	}
	return w.OnKey(msg)
}
