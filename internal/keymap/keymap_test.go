//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", ContextGlobal, 2},
		{"list context", ContextList, 6},
		{"rail context", ContextRail, 2},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	validContexts := map[string]bool{
		ContextGlobal: true,
		ContextList:   true,
		ContextRail:   true,
	}

	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestBindingsKeysAreUnique(t *testing.T) {
	owner := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if prev, ok := owner[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			owner[k] = b.Action
		}
	}
}

func TestBinding_Key(t *testing.T) {
	b := Binding{ActionScrollDown, []string{"down", "j"}, "Scroll down", ContextList}

	kb := b.Key()

	if got := kb.Keys(); len(got) != 2 || got[0] != "down" || got[1] != "j" {
		t.Errorf("Keys() = %v", got)
	}
	if kb.Help().Key != "↓" {
		t.Errorf("Help().Key = %q, want %q", kb.Help().Key, "↓")
	}
	if kb.Help().Desc != "Scroll down" {
		t.Errorf("Help().Desc = %q", kb.Help().Desc)
	}
	if !kb.Enabled() {
		t.Error("binding should be enabled")
	}
}

func TestHelpMap(t *testing.T) {
	m := NewHelpMap(Bindings)

	full := m.FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() has %d columns, want one per context (3)", len(full))
	}
	if len(full[0]) != len(ByContext(ContextGlobal)) {
		t.Errorf("first column has %d bindings, want the global ones", len(full[0]))
	}

	short := m.ShortHelp()
	if len(short) != 4 {
		t.Fatalf("ShortHelp() has %d bindings, want 4", len(short))
	}
	descs := make(map[string]bool)
	for _, kb := range short {
		descs[kb.Help().Desc] = true
	}
	for _, want := range []string{"Quit", "Toggle help", "Next section", "Previous section"} {
		if !descs[want] {
			t.Errorf("ShortHelp() missing %q", want)
		}
	}
}

func TestHelpMap_SkipsBindingsWithoutKeys(t *testing.T) {
	m := NewHelpMap([]Binding{
		{ActionQuit, nil, "Quit", ContextGlobal},
		{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},
	})

	if len(m.FullHelp()) != 1 || len(m.FullHelp()[0]) != 1 {
		t.Errorf("FullHelp() = %v, want only the help binding", m.FullHelp())
	}
	if len(m.ShortHelp()) != 1 {
		t.Errorf("ShortHelp() = %v, want only the help binding", m.ShortHelp())
	}
}
