package flow

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Options configures flow rendering.
type Options struct {
	// Detailed includes visit counts in node labels.
	// When false, only the record ID is shown.
	Detailed bool
}

// ToDOT converts a flow graph to Graphviz DOT format. Flows read left to
// right; the root is drawn as an oval, the current position with a heavy
// outline. The resulting DOT string can be rendered with [RenderSVG] or
// any external Graphviz.
func ToDOT(g *Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph navigation {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, edgeLabel(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", nodeLabel(n, opts.Detailed))}
	if n.Root {
		attrs = append(attrs, "shape=oval", "fillcolor=lightgrey")
	}
	if n.Current {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

func nodeLabel(n Node, detailed bool) string {
	if !detailed || n.Visits <= 1 {
		return n.ID
	}
	return fmt.Sprintf("%s\n%d visits", n.ID, n.Visits)
}

func edgeLabel(e Edge) string {
	if e.Count > 1 {
		return fmt.Sprintf("%s (%d)", e.Op, e.Count)
	}
	return e.Op
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// The returned bytes are ready for display or embedding.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the outer svg tag so the image scales cleanly
// when embedded: origin at 0 0, explicit width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
