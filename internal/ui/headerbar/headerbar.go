// Package headerbar renders the single-line header above the list.
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/rolodex/internal/ui/render"
	"github.com/llehouerou/rolodex/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appTitle = "rolodex"

// Info is what the header shows.
type Info struct {
	Section  string // title of the section under the index
	Driver   string // surface currently driving the index
	Sections int
	Contacts int
}

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Counts formats the right-hand side, e.g. "26 sections · 1,204 contacts".
func Counts(sections, contacts int) string {
	return fmt.Sprintf("%s %s · %s %s",
		humanize.Comma(int64(sections)), plural(sections, "section"),
		humanize.Comma(int64(contacts)), plural(contacts, "contact"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Render returns the header bar string for the given width.
func Render(th *styles.Theme, info Info, width int) string {
	if width < 20 {
		return ""
	}

	separator := separatorStyle.Render(" · ")
	left := styles.ApplyGradient(appTitle, th.Accent, th.Highlight)
	if info.Section != "" {
		left += separator + sectionStyle.Foreground(th.Highlight).Render(render.Sanitize(info.Section))
	}
	if info.Driver != "" {
		left += separator + th.S().Muted.Render(info.Driver)
	}

	right := th.S().Muted.Render(Counts(info.Sections, info.Contacts))
	if lipgloss.Width(left)+1+lipgloss.Width(right) > width {
		right = ""
	}

	return render.Fit(" "+render.Row(left, right, width-2), width)
}
