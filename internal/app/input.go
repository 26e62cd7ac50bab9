// internal/app/input.go
package app

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rolodex/internal/keymap"
	"github.com/llehouerou/rolodex/internal/ui"
	"github.com/llehouerou/rolodex/internal/ui/contactlist"
	"github.com/llehouerou/rolodex/internal/ui/layout"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg)

	switch action {
	case keymap.ActionQuit:
		if m.Engine != nil {
			m.Engine.Close()
		}
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp
		m.resize()
		return m, nil
	}

	// Navigation bindings are disabled until there is something to navigate.
	switch action { //nolint:exhaustive // global actions handled above
	case keymap.ActionScrollDown:
		m.scrollList(func(l *contactlist.Model) { l.ScrollBy(ui.ScrollStep) })
	case keymap.ActionScrollUp:
		m.scrollList(func(l *contactlist.Model) { l.ScrollBy(-ui.ScrollStep) })
	case keymap.ActionHalfPageDown:
		m.scrollList((*contactlist.Model).HalfPageDown)
	case keymap.ActionHalfPageUp:
		m.scrollList((*contactlist.Model).HalfPageUp)
	case keymap.ActionJumpStart:
		m.scrollList((*contactlist.Model).Top)
	case keymap.ActionJumpEnd:
		m.scrollList((*contactlist.Model).Bottom)
	case keymap.ActionNextSection:
		m.jumpSection(1)
	case keymap.ActionPrevSection:
		m.jumpSection(-1)
	default:
		return m, nil
	}
	return m, m.animate()
}

// handleMouse routes mouse input. A rail drag keeps the mouse until the
// button is released, wherever the pointer goes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Engine == nil || m.Engine.Len() == 0 {
		return m, nil
	}
	screen := m.screen()
	driver := m.Engine.Rail()

	if _, dragging := driver.Active(); dragging {
		switch msg.Action { //nolint:exhaustive // presses ignored while dragging
		case tea.MouseActionMotion:
			driver.Update(railPointer, m.Rail.RailY(screen.ContentRow(msg.Y)))
		case tea.MouseActionRelease:
			driver.End(railPointer)
		}
		return m, m.animate()
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch screen.RegionAt(msg.X, msg.Y) { //nolint:exhaustive // only list and rail take input
	case layout.RegionRail:
		if msg.Button == tea.MouseButtonLeft {
			driver.Begin(railPointer, m.Rail.RailY(screen.ContentRow(msg.Y)))
		}
	case layout.RegionList:
		switch msg.Button { //nolint:exhaustive // wheel only
		case tea.MouseButtonWheelUp:
			m.scrollList(func(l *contactlist.Model) { l.ScrollBy(-ui.WheelStep) })
		case tea.MouseButtonWheelDown:
			m.scrollList(func(l *contactlist.Model) { l.ScrollBy(ui.WheelStep) })
		default:
			return m, nil
		}
	default:
		return m, nil
	}
	return m, m.animate()
}

// scrollList hands the index to the list, applies scroll and feeds the new
// offset to the list driver.
func (m *Model) scrollList(scroll func(*contactlist.Model)) {
	list := m.Engine.List()
	list.Touch()
	scroll(&m.List)
	list.OnScroll(float64(m.List.Offset()))
}

// jumpSection moves to the neighbouring section the way a tap on the rail
// would. It does nothing while a drag is in progress.
func (m *Model) jumpSection(delta int) {
	driver := m.Engine.Rail()
	if _, dragging := driver.Active(); dragging {
		return
	}
	current := int(math.Round(m.Engine.State().Index()))
	target := min(max(current+delta, 0), m.Engine.Len()-1)
	y, ok := driver.ItemCenter(target)
	if !ok {
		return
	}
	if driver.Begin(railPointer, y) {
		driver.End(railPointer)
	}
}
