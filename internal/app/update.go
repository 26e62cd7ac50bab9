// internal/app/update.go
package app

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rolodex/internal/errmsg"
	"github.com/llehouerou/rolodex/internal/scrollsync"
	"github.com/llehouerou/rolodex/internal/ui/headerbar"
	"github.com/llehouerou/rolodex/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ContactsLoadedMsg:
		return m.handleContactsLoaded(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case FrameMsg:
		return m.handleFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleContactsLoaded(msg ContactsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpContactsLoad, msg.Err)
		return m, nil
	}
	m.ErrorMsg = ""
	m.setSections(msg.Sections)
	m.resize()
	return m, m.animate()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.resize()
	return m, m.animate()
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.ticking = false
	if m.Engine == nil {
		return m, nil
	}
	m.Engine.Tick()
	m.followRail()
	return m, m.animate()
}

// resize lays the components out for the current window and reports the
// measured geometry to the engine.
func (m *Model) resize() {
	contentHeight := m.contentHeight()
	railWidth := m.Rail.Width()

	m.List.SetSize(layout.ListWidth(m.Width, railWidth), contentHeight)
	m.Rail.SetSize(railWidth, contentHeight)
	m.Help.Width = m.Width

	if m.Engine == nil || contentHeight == 0 {
		return
	}
	if row := m.List.RowHeight(); row > 0 {
		m.Engine.Calibration().Observe(scrollsync.Measurement{
			Dimension: scrollsync.DimensionRow,
			Height:    float64(row),
		})
	}
	m.Rail.Calibrate(m.Engine.Calibration())
	m.followRail()
}

func (m Model) contentHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: m.footerHeight(),
	})
}

// screen describes the current split for mouse hit testing.
func (m Model) screen() layout.Screen {
	return layout.Screen{
		Width:         m.Width,
		Height:        m.Height,
		HeaderHeight:  headerbar.Height,
		ContentHeight: m.contentHeight(),
		RailWidth:     m.Rail.Width(),
	}
}

// followRail moves the list to the rail's projection while the rail owns
// the index.
func (m *Model) followRail() {
	if offset, ok := m.Engine.List().Projection(); ok {
		m.List.SetOffset(int(math.Round(offset)))
	}
}

// animate schedules the next frame while anything is moving.
func (m *Model) animate() tea.Cmd {
	if m.ticking || m.Engine == nil || !m.Engine.Animating() {
		return nil
	}
	m.ticking = true
	return FrameCmd(m.motion.FPS)
}
