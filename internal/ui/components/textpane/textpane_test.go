package textpane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tabview/internal/ui/widget"
)

func TestDrawlistBeforeGeometry(t *testing.T) {
	p := New(widget.NewCore(nil), "notes", "hello")
	got, err := p.Drawlist()
	if err != nil {
		t.Fatalf("Drawlist() error = %v", err)
	}
	if got != "Loading..." {
		t.Errorf("Drawlist() before resize = %q, want placeholder", got)
	}
}

func TestRefreshPicksUpGeometry(t *testing.T) {
	core := widget.NewCore(nil)
	core.SetSize(20, 5)
	p := New(core, "notes", "hello world")

	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	body, err := p.Drawlist()
	if err != nil {
		t.Fatalf("Drawlist() error = %v", err)
	}
	if !strings.Contains(body, "hello world") {
		t.Errorf("Drawlist() = %q, want content visible", body)
	}

	// Refresh is idempotent.
	if err := p.Refresh(); err != nil {
		t.Fatalf("second Refresh() error = %v", err)
	}
	again, _ := p.Drawlist()
	if again != body {
		t.Errorf("Drawlist() changed across idempotent refreshes")
	}
}

func TestHeaderAndFooter(t *testing.T) {
	core := widget.NewCore(nil)
	core.SetSize(20, 5)
	p := New(core, "notes", "hello")
	if err := p.Refresh(); err != nil {
		t.Fatal(err)
	}

	header, err := p.RenderHeader()
	if err != nil {
		t.Fatalf("RenderHeader() error = %v", err)
	}
	if !strings.Contains(header, "notes") {
		t.Errorf("RenderHeader() = %q, want title", header)
	}

	footer, err := p.RenderFooter()
	if err != nil {
		t.Fatalf("RenderFooter() error = %v", err)
	}
	if !strings.Contains(footer, "%") {
		t.Errorf("RenderFooter() = %q, want scroll percentage", footer)
	}
}

func TestScrollKeys(t *testing.T) {
	core := widget.NewCore(nil)
	core.SetSize(20, 3)
	p := New(core, "notes", strings.Repeat("line\n", 30))
	if err := p.Refresh(); err != nil {
		t.Fatal(err)
	}

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	if err := p.OnKey(down); err != nil {
		t.Fatalf("OnKey(j) error = %v", err)
	}

	bottom := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}
	if err := p.OnKey(bottom); err != nil {
		t.Fatalf("OnKey(G) error = %v", err)
	}
	footer, _ := p.RenderFooter()
	if !strings.Contains(footer, "100%") {
		t.Errorf("RenderFooter() after GotoBottom = %q, want 100%%", footer)
	}

	// Unrecognized keys are ignored, not an error.
	other := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}
	if err := p.OnKey(other); err != nil {
		t.Errorf("OnKey(z) error = %v, want nil", err)
	}
}
