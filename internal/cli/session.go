package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// sessionCommand creates the session management command.
func (c *CLI) sessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage saved navigation sessions",
	}

	cmd.AddCommand(c.sessionListCommand())
	cmd.AddCommand(c.sessionShowCommand())
	cmd.AddCommand(c.sessionClearCommand())

	return cmd
}

// sessionListCommand creates the "session list" subcommand.
func (c *CLI) sessionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved navigation sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			ids, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			if len(ids) == 0 {
				printInfo("No saved sessions")
				return nil
			}

			printInfo("%d saved session(s)", len(ids))
			for _, id := range ids {
				sess, err := store.Get(cmd.Context(), id)
				if err != nil || sess == nil {
					continue
				}
				printDetail("%s  depth %d  saved %s", id, sess.Depth(), sess.SavedAt.Format(time.DateTime))
			}
			return nil
		},
	}
}

// sessionShowCommand creates the "session show" subcommand.
func (c *CLI) sessionShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a saved session's navigation path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			sess, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get session %q: %w", args[0], err)
			}
			if sess == nil {
				printWarning("No session %q (missing or expired)", args[0])
				return nil
			}

			printKeyValue("session", sess.ID)
			printKeyValue("depth", fmt.Sprintf("%d", sess.Depth()))
			printKeyValue("direction", sess.Direction.String())
			printKeyValue("saved", sess.SavedAt.Format(time.DateTime))
			printKeyValue("expires", sess.ExpiresAt.Format(time.DateTime))
			if len(sess.IDs) > 0 {
				printKeyValue("path", strings.Join(sess.IDs, " "+iconArrow+" "))
			} else {
				printKeyValue("path", "(root)")
			}
			return nil
		},
	}
}

// sessionClearCommand creates the "session clear" subcommand.
func (c *CLI) sessionClearCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear [session-id]",
		Short: "Delete a saved session, or expired ones with --all",
		Long: `Delete a saved session by ID.

With --all, every saved session is deleted; without arguments, only
expired sessions are cleaned up.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := c.openStore(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer store.Close()

			ctx := cmd.Context()
			switch {
			case len(args) == 1:
				if err := store.Delete(ctx, args[0]); err != nil {
					return fmt.Errorf("delete session %q: %w", args[0], err)
				}
				printSuccess("Deleted session %q", args[0])

			case all:
				ids, err := store.List(ctx)
				if err != nil {
					return fmt.Errorf("list sessions: %w", err)
				}
				for _, id := range ids {
					if err := store.Delete(ctx, id); err != nil {
						return fmt.Errorf("delete session %q: %w", id, err)
					}
				}
				if err := store.Cleanup(ctx); err != nil {
					return fmt.Errorf("cleanup: %w", err)
				}
				printSuccess("Deleted %d session(s)", len(ids))

			default:
				if err := store.Cleanup(ctx); err != nil {
					return fmt.Errorf("cleanup: %w", err)
				}
				printSuccess("Removed expired sessions")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "delete all sessions, not just expired ones")
	return cmd
}
