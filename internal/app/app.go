// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rolodex/internal/config"
	"github.com/llehouerou/rolodex/internal/contacts"
	"github.com/llehouerou/rolodex/internal/keymap"
	"github.com/llehouerou/rolodex/internal/motion"
	"github.com/llehouerou/rolodex/internal/scrollsync"
	"github.com/llehouerou/rolodex/internal/ui/contactlist"
	"github.com/llehouerou/rolodex/internal/ui/rail"
	"github.com/llehouerou/rolodex/internal/ui/styles"
)

// railPointer identifies rail drags; only the left button drags the rail.
const railPointer = scrollsync.PointerID(tea.MouseButtonLeft)

// Model is the root application model containing all state.
type Model struct {
	Source   contacts.Source
	Sections []contacts.Section
	Engine   *scrollsync.Engine
	List     contactlist.Model
	Rail     rail.Model
	Help     help.Model
	ShowHelp bool
	Loaded   bool
	ErrorMsg string
	Width    int
	Height   int

	theme   *styles.Theme
	motion  config.MotionConfig
	railCfg config.RailConfig
	keys    *keymap.Resolver
	helpMap keymap.HelpMap
	ticking bool // a FrameMsg is scheduled
}

// New creates the application model. Contacts are read from source when the
// program starts.
func New(cfg *config.Config, source contacts.Source) Model {
	themeCfg := cfg.GetThemeConfig()
	th := styles.New(themeCfg.Accent, themeCfg.Highlight)
	railCfg := cfg.GetRailConfig()

	m := Model{
		Source:  source,
		List:    contactlist.New(th),
		Rail:    rail.New(th, nil, railCfg.Spacing, railCfg.Offset()),
		Help:    help.New(),
		theme:   th,
		motion:  cfg.GetMotionConfig(),
		railCfg: railCfg,
		keys:    keymap.NewResolver(keymap.Bindings),
		helpMap: keymap.NewHelpMap(keymap.Bindings),
	}
	m.setNavigation(false)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return LoadContactsCmd(m.Source)
}

// EngineOptions builds the engine interpolations from the motion settings.
func EngineOptions(mc config.MotionConfig) scrollsync.Options {
	opts := scrollsync.DefaultOptions(mc.FPS)
	opts.Spring.Frequency = mc.SpringFrequency
	opts.Spring.Damping = mc.SpringDamping
	opts.Jump.Duration = mc.Timing()
	opts.Jump.Easing = motion.Elastic(mc.Bounce())
	opts.Fade.Easing = motion.EasingByName(mc.FadeEasing)
	return opts
}

// setSections replaces the displayed contacts and starts a fresh engine for
// them. The previous engine, if any, is closed.
func (m *Model) setSections(sections []contacts.Section) {
	if m.Engine != nil {
		m.Engine.Close()
	}
	m.Sections = sections
	m.Engine = scrollsync.NewEngine(len(sections), EngineOptions(m.motion))
	m.ticking = false

	m.List.SetSections(sections)
	m.Rail = rail.New(m.theme, contacts.Titles(sections), m.railCfg.Spacing, m.railCfg.Offset())
	m.Rail.SetEngine(m.Engine)
	m.Loaded = true
	m.setNavigation(len(sections) > 0)
}

// setNavigation turns the list and rail key bindings on or off.
func (m *Model) setNavigation(enabled bool) {
	for _, ctx := range []string{keymap.ContextList, keymap.ContextRail} {
		for _, b := range keymap.ByContext(ctx) {
			m.keys.SetEnabled(b.Action, enabled)
		}
	}
}
