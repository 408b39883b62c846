package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/navstack/pkg/inspect"
	"github.com/matzehuels/navstack/pkg/journal"
	"github.com/matzehuels/navstack/pkg/nav"
	"github.com/matzehuels/navstack/pkg/navtea"
	"github.com/matzehuels/navstack/pkg/session"
)

// demoCommand creates the demo command running the showcase TUI.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		sessionID string
		resume    bool
		noSave    bool
		inspectOn bool
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive navigation demo",
		Long: `Run the interactive navigation demo.

The demo navigates a small library catalog with a stack-based navigation
controller: enter pushes the selected destination, esc pops one screen,
l pops straight back to the current shelf by ID, r pops to the root, and
s pushes a settings screen under a fixed identifier (pushing it twice
demonstrates duplicate rejection). The status bar shows depth, direction,
and the transition the direction selects.

On exit the navigation stack is saved as a session; --resume picks it up
again. --inspect serves live navigation state over HTTP while the demo
runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}
			if inspectOn {
				cfg.Inspector.Enabled = true
			}
			return c.runDemo(cmd.Context(), cfg, sessionID, resume, noSave)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "demo", "session ID to save to and resume from")
	cmd.Flags().BoolVar(&resume, "resume", false, "restore the saved session before starting")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not save the session on exit")
	cmd.Flags().BoolVar(&inspectOn, "inspect", false, "serve the HTTP inspector while the demo runs")
	cmd.Flags().BoolVar(&strict, "strict", false, "panic on rejected navigation instead of logging")

	return cmd
}

// runDemo wires controller, journal, session store, and inspector together
// and runs the bubbletea program.
func (c *CLI) runDemo(ctx context.Context, cfg *Config, sessionID string, resume, noSave bool) error {
	store, err := c.openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	jrn := journal.New(0)
	root := newShelvesScreen()
	ctrl := nav.New(root, nav.Options{
		Logger:  c.Logger,
		Strict:  cfg.Strict,
		OnEvent: jrn.Record,
	})

	if resume {
		sess, err := store.Get(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("load session %q: %w", sessionID, err)
		}
		if sess == nil {
			c.Logger.Warn("no saved session to resume", "id", sessionID)
		} else if err := ctrl.Restore(session.Records(sess, resolveScreen)); err != nil {
			return fmt.Errorf("restore session %q: %w", sessionID, err)
		}
	}

	if cfg.Inspector.Enabled {
		srv := inspect.New(jrn, c.Logger)
		go func() {
			if err := srv.Serve(ctx, cfg.Inspector.Addr); err != nil {
				c.Logger.Error("inspector stopped", "err", err)
			}
		}()
	}

	transitions := navtea.Transitions{
		Forward:  cfg.Transitions.Forward,
		Backward: cfg.Transitions.Backward,
		Easing:   cfg.Transitions.Easing,
	}
	app := demoApp{
		nav: navtea.New(root, navtea.WithController(ctrl), navtea.WithTransitions(transitions)),
	}

	p := tea.NewProgram(app, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}

	if noSave {
		return nil
	}
	sess := session.Capture(sessionID, ctrl.State(), session.DefaultTTL)
	if err := store.Set(ctx, sess); err != nil {
		return fmt.Errorf("save session %q: %w", sessionID, err)
	}
	printSuccess("Saved session %q (depth %d)", sessionID, sess.Depth())
	printDetail("Resume it: %s demo --resume --session %s", appName, sessionID)
	printDetail("Export it: %s export %s -f svg", appName, sessionID)
	return nil
}

// =============================================================================
// Demo App Model
// =============================================================================

// demoApp wraps the navigation model with global key bindings and a
// status bar. Everything else is delegated: screens handle their own
// input, the navtea model routes it.
type demoApp struct {
	nav navtea.Model
}

func (a demoApp) Init() tea.Cmd { return a.nav.Init() }

func (a demoApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "esc":
			return a, navtea.Pop()
		case "r":
			return a, navtea.PopToRoot()
		case "s":
			// Fixed ID: a second press while settings is open is a
			// duplicate push and gets rejected.
			return a, navtea.PushWithID(settingsID, newSettingsScreen())
		case "l":
			if id, ok := currentShelfID(a.nav.Controller()); ok {
				return a, navtea.PopTo(id)
			}
			return a, nil
		}
	}

	next, cmd := a.nav.Update(msg)
	a.nav = next.(navtea.Model)
	return a, cmd
}

func (a demoApp) View() string {
	return a.nav.View() + "\n" + a.statusBar() + "\n" + helpBar()
}

// statusBar shows the observable controller state: depth, direction, and
// the transition that direction selects.
func (a demoApp) statusBar() string {
	ctrl := a.nav.Controller()
	parts := []string{
		fmt.Sprintf("depth %d", ctrl.Depth()),
		ctrl.Direction().String(),
		a.nav.Transition(),
	}
	if path := ctrl.IDs(); len(path) > 0 {
		parts = append(parts, strings.Join(path, " "+iconArrow+" "))
	}
	return StyleDim.Render(strings.Join(parts, " · "))
}

func helpBar() string {
	return StyleDim.Render("↑/↓ move · ⏎ open · esc back · l shelf · r root · s settings · q quit")
}

// currentShelfID returns the topmost shelf record on the stack, the
// target for the "back to shelf" binding.
func currentShelfID(ctrl *nav.Controller[navtea.Screen]) (string, bool) {
	ids := ctrl.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if strings.HasPrefix(ids[i], shelfIDPrefix) {
			return ids[i], true
		}
	}
	return "", false
}
