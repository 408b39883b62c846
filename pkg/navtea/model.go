package navtea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/navstack/pkg/nav"
)

// Option configures a Model.
type Option func(*config)

type config struct {
	controller  *nav.Controller[Screen]
	transitions Transitions
	navOpts     nav.Options
}

// WithTransitions sets the transition pair selected by navigation
// direction.
func WithTransitions(t Transitions) Option {
	return func(c *config) { c.transitions = t }
}

// WithController uses an externally constructed controller instead of
// building one. This is how navigation state outlives a single Model:
// build the controller at application scope, restore a session into it,
// and hand it to each Model you create. The controller's root payload is
// ignored in favor of the Model's root screen.
func WithController(ctrl *nav.Controller[Screen]) Option {
	return func(c *config) { c.controller = ctrl }
}

// WithLogger routes the controller's rejection diagnostics to logger.
// Ignored when WithController supplies the controller.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.navOpts.Logger = logger }
}

// WithEventFunc wires an event hook, typically a journal's Record method.
// Ignored when WithController supplies the controller.
func WithEventFunc(fn func(nav.Event)) Option {
	return func(c *config) { c.navOpts.OnEvent = fn }
}

// Model renders the top of a navigation stack of screens, falling back to
// the root screen when the stack is empty. It satisfies tea.Model, so it
// can drive a program directly or sit inside a larger model.
type Model struct {
	ctrl        *nav.Controller[Screen]
	root        Screen
	transitions Transitions
	width       int
	height      int
}

// New creates a model showing the root screen.
func New(root Screen, opts ...Option) Model {
	cfg := config{transitions: DefaultTransitions}
	for _, opt := range opts {
		opt(&cfg)
	}
	ctrl := cfg.controller
	if ctrl == nil {
		ctrl = nav.New[Screen](root, cfg.navOpts)
	}
	return Model{ctrl: ctrl, root: root, transitions: cfg.transitions}
}

// Controller exposes the underlying controller for queries and for
// navigation outside the message loop (session capture, tests).
func (m Model) Controller() *nav.Controller[Screen] { return m.ctrl }

// Current returns the screen being rendered: the top of the stack, or the
// root screen when the stack is empty.
func (m Model) Current() Screen {
	if rec, ok := m.ctrl.Top(); ok {
		return rec.Payload
	}
	return m.root
}

// Depth returns the number of pushed screens.
func (m Model) Depth() int { return m.ctrl.Depth() }

// Transition returns the transition name matching the latest navigation
// direction.
func (m Model) Transition() string { return m.transitions.Select(m.ctrl.Direction()) }

// Init starts the root screen.
func (m Model) Init() tea.Cmd { return m.root.Init() }

// Update applies navigation messages to the controller and routes
// everything else to the current screen. Window sizes are remembered and
// broadcast to every screen on the stack, so screens revealed by a pop
// are already laid out.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PushMsg:
		var rec nav.Record[Screen]
		if msg.ID == "" {
			rec = m.ctrl.Push(msg.Screen)
		} else {
			rec = m.ctrl.PushWithID(msg.ID, msg.Screen)
		}
		if top, ok := m.ctrl.Top(); !ok || top.ID != rec.ID {
			// Rejected duplicate; the controller already logged it.
			return m, nil
		}
		cmds := []tea.Cmd{msg.Screen.Init()}
		if m.width > 0 {
			cmds = append(cmds, m.resize(rec.ID))
		}
		return m, tea.Batch(cmds...)

	case PopMsg:
		m.ctrl.Pop()
		return m, nil

	case PopToMsg:
		m.ctrl.PopTo(msg.ID)
		return m, nil

	case PopToRootMsg:
		m.ctrl.PopToRoot()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		var cmds []tea.Cmd
		next, cmd := m.root.Update(msg)
		m.root = next
		cmds = append(cmds, cmd)
		for _, rec := range m.ctrl.Records() {
			next, cmd := rec.Payload.Update(msg)
			m.ctrl.SetPayload(rec.ID, next)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if rec, ok := m.ctrl.Top(); ok {
		next, cmd := rec.Payload.Update(msg)
		m.ctrl.SetPayload(rec.ID, next)
		return m, cmd
	}
	next, cmd := m.root.Update(msg)
	m.root = next
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string { return m.Current().View() }

// resize re-delivers the last seen window size to one screen, so a screen
// pushed after the size arrived still learns it.
func (m Model) resize(id string) tea.Cmd {
	rec, ok := m.ctrl.Find(id)
	if !ok {
		return nil
	}
	next, cmd := rec.Payload.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.ctrl.SetPayload(id, next)
	return cmd
}

var _ tea.Model = Model{}
