package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing, feeding it messages and
// collecting the commands it returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness creates a harness and captures the model's init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// Send feeds any message to the model and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendKey simulates typing key, which may be a rune string ("j") or a
// special key name understood by KeyMsg.String ("ctrl+d", "down").
func (h *Harness) SendKey(key string) tea.Cmd {
	if t, ok := specialKeys[key]; ok {
		return h.Send(tea.KeyMsg{Type: t})
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

var specialKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEscape,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+d": tea.KeyCtrlD,
	"ctrl+u": tea.KeyCtrlU,
}

// Press, Drag and Release send left-button mouse events at (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress)
}

// Drag sends a left-button motion event.
func (h *Harness) Drag(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseButtonLeft, tea.MouseActionMotion)
}

// Release sends a button release.
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseButtonNone, tea.MouseActionRelease)
}

// Wheel sends one wheel notch; down scrolls towards the end.
func (h *Harness) Wheel(x, y int, down bool) tea.Cmd {
	button := tea.MouseButtonWheelUp
	if down {
		button = tea.MouseButtonWheelDown
	}
	return h.mouse(x, y, button, tea.MouseActionPress)
}

func (h *Harness) mouse(x, y int, button tea.MouseButton, action tea.MouseAction) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Button: button, Action: action})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Pump runs pending commands and feeds their messages back to the model
// until no command is left or limit messages were delivered. Messages
// accepted by skip are dropped (use it for tea.Quit and timers the test
// does not want to run). It returns the number of messages delivered.
func (h *Harness) Pump(limit int, skip func(tea.Msg) bool) int {
	delivered := 0
	for delivered < limit && len(h.cmds) > 0 {
		cmd := h.cmds[0]
		h.cmds = h.cmds[1:]
		for _, msg := range flatten(ExecuteCmd(cmd)) {
			if msg == nil || (skip != nil && skip(msg)) {
				continue
			}
			h.Send(msg)
			delivered++
		}
	}
	return delivered
}

func flatten(msg tea.Msg) []tea.Msg {
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, cmd := range batch {
		out = append(out, flatten(ExecuteCmd(cmd))...)
	}
	return out
}
