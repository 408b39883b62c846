package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/navstack/pkg/render/flow"
)

// Export formats.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

// exportCommand creates the export command rendering a saved session's
// navigation path.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export a saved session's navigation path as DOT, SVG, or JSON",
		Long: `Export a saved session's navigation path as a flow graph.

The saved ID sequence becomes a linear chain from the root to the
session's top record. Formats: dot (Graphviz source), svg (rendered via
Graphviz), json (the graph structure).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runExport(cmd.Context(), cfg, args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <session-id>.<format>, - for stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include visit counts in node labels")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, cfg *Config, sessionID, format, output string, detailed bool) error {
	logger := loggerFromContext(ctx)

	store, err := c.openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	sess, err := store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session %q: %w", sessionID, err)
	}
	if sess == nil {
		return fmt.Errorf("no session %q (missing or expired)", sessionID)
	}
	logger.Debug("exporting session", "id", sessionID, "depth", sess.Depth(), "format", format)

	g := flow.ChainFromIDs(sess.IDs)
	opts := flow.Options{Detailed: detailed}

	var data []byte
	switch strings.ToLower(format) {
	case formatDOT:
		data = []byte(flow.ToDOT(g, opts))
	case formatJSON:
		data, err = flow.Marshal(g)
		if err != nil {
			return fmt.Errorf("marshal flow: %w", err)
		}
	case formatSVG:
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		data, err = flow.RenderSVG(ctx, flow.ToDOT(g, opts))
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render SVG: %w", err)
		}
		spinner.Stop()
	default:
		return fmt.Errorf("unknown format %q (want dot, svg, or json)", format)
	}

	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if output == "" {
		output = sessionID + "." + strings.ToLower(format)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Exported session %q", sessionID)
	printFile(output)
	return nil
}
