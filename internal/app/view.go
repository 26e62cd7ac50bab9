// internal/app/view.go
package app

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rolodex/internal/contacts"
	"github.com/llehouerou/rolodex/internal/scrollsync"
	"github.com/llehouerou/rolodex/internal/ui/headerbar"
	"github.com/llehouerou/rolodex/internal/ui/render"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(m.theme, m.headerInfo(), m.Width)

	var body string
	switch {
	case m.ErrorMsg != "":
		body = m.renderMessage(m.theme.S().Muted.Render(m.ErrorMsg))
	case !m.Loaded:
		body = m.renderMessage(m.theme.S().Muted.Render("Loading contacts…"))
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.List.View(), m.Rail.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView())
}

// headerInfo describes the current section and who is driving it. While the
// list owns the index the section is read from the scroll offset, which
// leads the eased index.
func (m Model) headerInfo() headerbar.Info {
	info := headerbar.Info{
		Sections: len(m.Sections),
		Contacts: contacts.Count(m.Sections),
	}
	if m.Engine == nil || len(m.Sections) == 0 {
		return info
	}
	snap := m.Engine.State().Snapshot()
	i := min(max(int(math.Round(snap.Index)), 0), len(m.Sections)-1)
	if snap.Owner == scrollsync.OwnerList {
		i = m.List.SectionAt(m.List.Offset())
	}
	info.Section = m.Sections[i].Title
	info.Driver = snap.Owner.String()
	return info
}

func (m Model) renderMessage(msg string) string {
	lines := render.Block([]string{" " + msg}, m.Width, m.contentHeight())
	return strings.Join(lines, "\n")
}

func (m Model) footerView() string {
	return m.Help.View(m.helpMap)
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.footerView())
}
