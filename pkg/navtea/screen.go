package navtea

import tea "github.com/charmbracelet/bubbletea"

// Screen is one destination in a navigation hierarchy. It is a bubbletea
// model that returns its own concrete kind from Update, so screens nest
// without type assertions.
//
// Screens are stored as controller payloads and re-written after every
// Update, so value receivers work the same way they do for tea.Model.
type Screen interface {
	// Init returns the command to run when the screen first appears.
	Init() tea.Cmd
	// Update handles a message and returns the evolved screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View renders the screen.
	View() string
}

// Navigation messages. The command constructors below are the usual way to
// produce these; the types are exported so programs that synthesize
// messages (tests, driving a program from outside) can build them
// directly.
type (
	// PushMsg pushes a screen. An empty ID means "generate one".
	PushMsg struct {
		ID     string
		Screen Screen
	}
	// PopMsg removes the top screen.
	PopMsg struct{}
	// PopToMsg removes every screen above the identified one.
	PopToMsg struct{ ID string }
	// PopToRootMsg removes all screens, returning to the root.
	PopToRootMsg struct{}
)

// Push returns a command that pushes screen under a generated ID on the
// next scheduling turn.
func Push(screen Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: screen} }
}

// PushWithID returns a command that pushes screen under the given ID, for
// stable destinations other screens pop back to by name.
func PushWithID(id string, screen Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{ID: id, Screen: screen} }
}

// Pop returns a command that removes the top screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}

// PopTo returns a command that pops back to the screen with the given ID.
func PopTo(id string) tea.Cmd {
	return func() tea.Msg { return PopToMsg{ID: id} }
}

// PopToRoot returns a command that removes all screens.
func PopToRoot() tea.Cmd {
	return func() tea.Msg { return PopToRootMsg{} }
}
