// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rolodex/internal/contacts"
)

// LoadContactsCmd reads every section from source.
func LoadContactsCmd(source contacts.Source) tea.Cmd {
	return func() tea.Msg {
		sections, err := source.Sections()
		return ContactsLoadedMsg{Sections: sections, Err: err}
	}
}

// FrameCmd returns a command that sends FrameMsg after one frame at fps.
func FrameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(fps, 1)), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
