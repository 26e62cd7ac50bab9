package keymap

// Binding maps keys to an action, with a description for help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains every key binding.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},

	{ActionScrollDown, []string{"j", "down"}, "Scroll down", ContextList},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", ContextList},
	{ActionHalfPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", ContextList},
	{ActionHalfPageUp, []string{"ctrl+u", "pgup"}, "Half page up", ContextList},
	{ActionJumpStart, []string{"g", "home"}, "Top", ContextList},
	{ActionJumpEnd, []string{"G", "end"}, "Bottom", ContextList},

	{ActionNextSection, []string{"]", "n"}, "Next section", ContextRail},
	{ActionPrevSection, []string{"[", "p"}, "Previous section", ContextRail},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
