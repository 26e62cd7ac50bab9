// Package app wires the contact list, the rail and the scroll-sync engine
// into the bubbletea program.
package app

import (
	"time"

	"github.com/llehouerou/rolodex/internal/contacts"
)

// ContactsLoadedMsg carries the sections read from the contacts source.
type ContactsLoadedMsg struct {
	Sections []contacts.Section
	Err      error
}

// FrameMsg advances the engine's animations by one frame.
type FrameMsg time.Time
