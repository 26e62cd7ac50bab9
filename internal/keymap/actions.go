// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// List scrolling
	ActionScrollUp     Action = "scroll_up"
	ActionScrollDown   Action = "scroll_down"
	ActionHalfPageUp   Action = "half_page_up"
	ActionHalfPageDown Action = "half_page_down"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"

	// Section jumps, driven through the rail
	ActionPrevSection Action = "prev_section"
	ActionNextSection Action = "next_section"
)

// Contexts a binding can belong to.
const (
	ContextGlobal = "global"
	ContextList   = "list"
	ContextRail   = "rail"
)
