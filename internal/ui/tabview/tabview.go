// Package tabview implements a generic tab container: an ordered collection
// of panes of one concrete widget type, active-pane tracking, composite
// header rendering with a right-aligned tab strip, and key dispatch that
// routes reserved chords to tab commands and everything else into the
// active pane.
package tabview

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tabview/internal/ui/helper"
	"tabview/internal/ui/theme"
	"tabview/internal/ui/widget"
)

var (
	// ErrEmpty is returned by operations that need at least one tab.
	ErrEmpty = errors.New("tabview: no tabs")

	// ErrLastTab is returned when closing the only remaining tab.
	// Repeated attempts fail the same way.
	ErrLastTab = errors.New("tabview: cannot close the last tab")

	// ErrOutOfRange is returned by Select for an invalid tab index.
	ErrOutOfRange = errors.New("tabview: tab index out of range")
)

// TabView holds panes of one concrete widget type in insertion order and
// tracks which one is active. It implements widget.Widget itself, so a
// TabView presents the same surface as the panes it hosts: footer, drawlist
// and refresh delegate to the active pane, while the header overlays the tab
// strip onto the active pane's own header.
//
// Whenever the container is non-empty, 0 <= ActiveIndex() < Len().
type TabView[T widget.Widget] struct {
	panes   []T
	active  int
	core    *widget.Core
	handler Tabbable
}

// New returns an empty container. The handler supplies tab-level semantics;
// typically the host model passes itself.
func New[T widget.Widget](core *widget.Core, handler Tabbable) *TabView[T] {
	return &TabView[T]{core: core, handler: handler}
}

// Len returns the number of panes.
func (tv *TabView[T]) Len() int { return len(tv.panes) }

// ActiveIndex returns the index of the active pane. Meaningless while the
// container is empty.
func (tv *TabView[T]) ActiveIndex() int { return tv.active }

// Panes returns the panes in tab order. The slice is shared; callers must
// not grow or shrink it.
func (tv *TabView[T]) Panes() []T { return tv.panes }

// Active returns the active pane as its concrete type.
func (tv *TabView[T]) Active() (T, error) {
	var zero T
	if len(tv.panes) == 0 {
		return zero, ErrEmpty
	}
	return tv.panes[tv.active], nil
}

// ActiveWidget returns the active pane viewed through the widget capability.
func (tv *TabView[T]) ActiveWidget() (widget.Widget, error) {
	p, err := tv.Active()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Push appends a pane at the end of the sequence and refreshes the active
// pane. The new pane becomes active only if the container was empty;
// otherwise the active index is unchanged and the caller advances it
// explicitly (Next or Select).
func (tv *TabView[T]) Push(p T) error {
	if len(tv.panes) == 0 {
		tv.active = 0
	}
	tv.panes = append(tv.panes, p)
	return tv.panes[tv.active].Refresh()
}

// Pop removes and returns the last pane regardless of which one is active.
// It is a low-level primitive: it never adjusts the active index, so a
// caller that pops the active tail must re-point the active tab itself.
func (tv *TabView[T]) Pop() (T, error) {
	var zero T
	if len(tv.panes) == 0 {
		return zero, ErrEmpty
	}
	last := tv.panes[len(tv.panes)-1]
	tv.panes[len(tv.panes)-1] = zero
	tv.panes = tv.panes[:len(tv.panes)-1]
	return last, nil
}

// CloseActive removes the active pane, re-points the active index at the
// nearest remaining tab and refreshes it. The last remaining tab cannot be
// closed; that fails with ErrLastTab and mutates nothing.
func (tv *TabView[T]) CloseActive() error {
	switch len(tv.panes) {
	case 0:
		return ErrEmpty
	case 1:
		return ErrLastTab
	}
	tv.panes = slices.Delete(tv.panes, tv.active, tv.active+1)
	if tv.active >= len(tv.panes) {
		tv.active = len(tv.panes) - 1
	}
	return tv.panes[tv.active].Refresh()
}

// Next advances the active index, wrapping to the first tab after the last,
// then runs the handler's OnNextTab hook. A hook failure is written to the
// core's log sink and discarded; the switch itself always completes.
func (tv *TabView[T]) Next() error {
	if len(tv.panes) == 0 {
		return ErrEmpty
	}
	if tv.active+1 == len(tv.panes) {
		tv.active = 0
	} else {
		tv.active++
	}
	tv.runSwitchHook()
	return nil
}

// Select jumps straight to tab i, running the same post-switch hook as
// Next. Selecting the already-active tab is a no-op.
func (tv *TabView[T]) Select(i int) error {
	if i < 0 || i >= len(tv.panes) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	if i == tv.active {
		return nil
	}
	tv.active = i
	tv.runSwitchHook()
	return nil
}

func (tv *TabView[T]) runSwitchHook() {
	if err := tv.handler.OnNextTab(); err != nil {
		tv.core.Logger().Error("tab switch hook failed", "err", err)
	}
}

// Core implements widget.Widget.
func (tv *TabView[T]) Core() *widget.Core { return tv.core }

// RenderHeader composes the active pane's header with the tab strip. The
// strip is right-justified against the available width; the pane's own
// header occupies the remaining space to the left.
func (tv *TabView[T]) RenderHeader() (string, error) {
	p, err := tv.Active()
	if err != nil {
		return "", err
	}
	header, err := p.RenderHeader()
	if err != nil {
		return "", err
	}
	return helper.OverlayRight(header, tv.renderStrip(), tv.core.Width()), nil
}

// renderStrip renders every tab label as " i:name " in pane order, with the
// active label inverted. Pure string computation.
func (tv *TabView[T]) renderStrip() string {
	var strip strings.Builder
	i := 0
	for name := range tv.handler.TabNames() {
		if name == "" {
			name = theme.TabPlaceholder
		}
		label := fmt.Sprintf(" %d:%s ", i, name)
		if i == tv.active {
			strip.WriteString(theme.TabActiveStyle.Render(label))
		} else {
			strip.WriteString(theme.TabStyle.Render(label))
		}
		i++
	}
	return strip.String()
}

// RenderFooter implements widget.Widget by delegating to the active pane.
func (tv *TabView[T]) RenderFooter() (string, error) {
	p, err := tv.Active()
	if err != nil {
		return "", err
	}
	return p.RenderFooter()
}

// Drawlist implements widget.Widget by delegating to the active pane.
func (tv *TabView[T]) Drawlist() (string, error) {
	p, err := tv.Active()
	if err != nil {
		return "", err
	}
	return p.Drawlist()
}

// Refresh implements widget.Widget by delegating to the active pane.
func (tv *TabView[T]) Refresh() error {
	p, err := tv.Active()
	if err != nil {
		return err
	}
	return p.Refresh()
}

// OnKey runs the two-stage tab dispatch, then refreshes the active pane
// regardless of the dispatch outcome so the screen never shows stale state.
func (tv *TabView[T]) OnKey(msg tea.KeyMsg) error {
	dispatchErr := Dispatch(tv.handler, msg)
	if len(tv.panes) > 0 {
		if err := tv.panes[tv.active].Refresh(); err != nil && dispatchErr == nil {
			dispatchErr = err
		}
	}
	return dispatchErr
}
