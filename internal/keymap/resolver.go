package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Resolver matches key presses against the bindings. When a key is bound
// to more than one action, the binding listed first wins.
type Resolver struct {
	actions []Action
	keys    map[Action]key.Binding
}

// NewResolver creates a resolver from bindings. Bindings sharing an action
// are merged.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{keys: make(map[Action]key.Binding)}
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		existing, ok := r.keys[b.Action]
		if !ok {
			r.actions = append(r.actions, b.Action)
			r.keys[b.Action] = b.Key()
			continue
		}
		merged := dedupe(slices.Concat(existing.Keys(), b.Keys))
		existing.SetKeys(merged...)
		r.keys[b.Action] = existing
	}
	return r
}

// Resolve returns the action bound to msg, or "" when none is. Disabled
// actions never match.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	for _, action := range r.actions {
		if key.Matches(msg, r.keys[action]) {
			return action
		}
	}
	return ""
}

// SetEnabled turns an action on or off.
func (r *Resolver) SetEnabled(action Action, enabled bool) {
	if b, ok := r.keys[action]; ok {
		b.SetEnabled(enabled)
		r.keys[action] = b
	}
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	if b, ok := r.keys[action]; ok {
		return b.Keys()
	}
	return nil
}

func dedupe(s []string) []string {
	seen := make(map[string]bool, len(s))
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
