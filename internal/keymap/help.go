package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Key converts the binding to a bubbles key binding. The help text shows
// the first key only.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKey(b.Keys[0]), b.Description),
	)
}

func displayKey(k string) string {
	switch k {
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return k
	}
}

// HelpMap feeds the footer help. Short help shows the section jumps, help
// and quit; full help shows a column per context.
type HelpMap struct {
	short []key.Binding
	full  [][]key.Binding
}

var _ help.KeyMap = HelpMap{}

var shortHelp = map[Action]bool{
	ActionPrevSection: true,
	ActionNextSection: true,
	ActionHelp:        true,
	ActionQuit:        true,
}

// NewHelpMap groups bindings by context, in the order contexts first appear.
func NewHelpMap(bindings []Binding) HelpMap {
	var (
		order  []string
		groups = make(map[string][]key.Binding)
		seen   = make(map[Action]bool)
		m      HelpMap
	)
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		if _, ok := groups[b.Context]; !ok {
			order = append(order, b.Context)
		}
		kb := b.Key()
		groups[b.Context] = append(groups[b.Context], kb)
		if shortHelp[b.Action] && !seen[b.Action] {
			m.short = append(m.short, kb)
		}
		seen[b.Action] = true
	}
	for _, ctx := range order {
		m.full = append(m.full, groups[ctx])
	}
	return m
}

// ShortHelp implements help.KeyMap.
func (m HelpMap) ShortHelp() []key.Binding {
	return m.short
}

// FullHelp implements help.KeyMap.
func (m HelpMap) FullHelp() [][]key.Binding {
	return m.full
}
