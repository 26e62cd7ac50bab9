// Package contactlist renders the sectioned contact list inside a viewport.
//
// Every section is drawn as one block of the same height: a header line
// followed by its contacts, padded with blank lines up to the tallest
// section. A scroll offset therefore maps to a section by plain division,
// which is what the scroll-sync engine expects from the list.
package contactlist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rolodex/internal/contacts"
	"github.com/llehouerou/rolodex/internal/ui"
	"github.com/llehouerou/rolodex/internal/ui/render"
	"github.com/llehouerou/rolodex/internal/ui/styles"
)

// Bullet precedes every contact name.
const Bullet = "●"

// minNameWidth is the room a name keeps before the photo host is dropped.
const minNameWidth = 8

// Model is the contact list component.
type Model struct {
	ui.Base
	theme    *styles.Theme
	sections []contacts.Section
	block    int
	vp       viewport.Model
}

// New creates an empty list drawn with th.
func New(th *styles.Theme) Model {
	return Model{
		theme: th,
		vp:    viewport.New(0, 0),
	}
}

// SetSections replaces the list content and scrolls back to the top.
func (m *Model) SetSections(sections []contacts.Section) {
	m.sections = sections
	m.block = blockHeight(sections)
	m.refresh()
	m.vp.GotoTop()
}

// Sections returns the displayed sections.
func (m Model) Sections() []contacts.Section {
	return m.sections
}

// Len returns the number of sections.
func (m Model) Len() int {
	return len(m.sections)
}

// RowHeight returns the height of one section block in lines, or 0 when
// the list is empty.
func (m Model) RowHeight() int {
	return m.block
}

// SetSize resizes the list and re-renders its content for the new width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.vp.Width = m.Width()
	m.vp.Height = m.Height()
	offset := m.vp.YOffset
	m.refresh()
	m.vp.SetYOffset(offset)
}

// Offset returns the current scroll offset in lines.
func (m Model) Offset() int {
	return m.vp.YOffset
}

// SetOffset scrolls to y, clamped to the scrollable range.
func (m *Model) SetOffset(y int) {
	m.vp.SetYOffset(y)
}

// ScrollBy scrolls by delta lines; negative values scroll up.
func (m *Model) ScrollBy(delta int) {
	m.vp.SetYOffset(m.vp.YOffset + delta)
}

// HalfPageDown scrolls down by half the visible height.
func (m *Model) HalfPageDown() {
	m.ScrollBy(max(m.Height()/2, 1))
}

// HalfPageUp scrolls up by half the visible height.
func (m *Model) HalfPageUp() {
	m.ScrollBy(-max(m.Height()/2, 1))
}

// Top scrolls to the first section.
func (m *Model) Top() {
	m.vp.GotoTop()
}

// Bottom scrolls to the last section.
func (m *Model) Bottom() {
	m.vp.GotoBottom()
}

// SectionAt returns the section shown at scroll offset y, clamped to the
// list. It returns -1 when the list is empty.
func (m Model) SectionAt(y int) int {
	if m.block == 0 || len(m.sections) == 0 {
		return -1
	}
	return min(max(y/m.block, 0), len(m.sections)-1)
}

// View renders the visible part of the list.
func (m Model) View() string {
	if m.Hidden() {
		return ""
	}
	if len(m.sections) == 0 {
		lines := []string{m.theme.S().Muted.Render(render.Truncate(" No contacts", m.Width()))}
		return strings.Join(render.Block(lines, m.Width(), m.Height()), "\n")
	}
	return strings.Join(render.Block(strings.Split(m.vp.View(), "\n"), m.Width(), m.Height()), "\n")
}

func (m *Model) refresh() {
	m.vp.SetContent(strings.Join(m.renderLines(), "\n"))
}

// renderLines draws every section block, then enough blank lines for the
// last section to reach the top of the view.
func (m Model) renderLines() []string {
	width := m.Width()
	lines := make([]string, 0, len(m.sections)*m.block+m.Height())
	for _, sec := range m.sections {
		block := make([]string, 0, m.block)
		block = append(block, m.renderHeader(sec.Title, width))
		for _, item := range sec.Data {
			block = append(block, m.renderItem(item, width))
		}
		lines = append(lines, render.Block(block, width, m.block)...)
	}
	for range max(m.Height()-m.block, 0) {
		lines = append(lines, render.EmptyLine(width))
	}
	return lines
}

func (m Model) renderHeader(title string, width int) string {
	return m.theme.S().SectionHeader.Render(render.TruncateAndPad(" "+title, width))
}

// renderItem draws "  ● Name" with the photo host right-aligned when it fits.
func (m Model) renderItem(item contacts.Item, width int) string {
	s := m.theme.S()
	prefix := "  " + s.Muted.Render(Bullet) + " "
	prefixWidth := 4

	host := item.PhotoHost()
	hostWidth := lipgloss.Width(host)
	nameWidth := width - prefixWidth
	if host != "" && nameWidth-hostWidth-2 >= minNameWidth {
		name := render.Truncate(item.Name, nameWidth-hostWidth-2)
		return render.Row(prefix+s.Base.Render(name), s.Subtle.Render(host)+" ", width)
	}
	return prefix + s.Base.Render(render.Truncate(item.Name, max(nameWidth, 0)))
}

func blockHeight(sections []contacts.Section) int {
	if len(sections) == 0 {
		return 0
	}
	tallest := 0
	for _, sec := range sections {
		tallest = max(tallest, len(sec.Data))
	}
	return 1 + tallest
}
