// Package flow renders navigation journals as flow graphs.
//
// A flow graph aggregates journal entries into nodes (the destinations a
// user visited) and edges (the transitions between them, labeled by
// operation and count). Unlike a dependency graph it is expected to be
// cyclic - going back is half the point - so nothing here assumes layers
// or acyclicity. Output formats are Graphviz DOT, SVG, and JSON.
package flow

import (
	"github.com/matzehuels/navstack/pkg/journal"
	"github.com/matzehuels/navstack/pkg/nav"
)

// RootLabel is the node ID that stands in for the navigation root, which
// has no record ID of its own.
const RootLabel = "(root)"

// Node is one destination in a flow graph.
type Node struct {
	ID      string `json:"id"`
	Visits  int    `json:"visits"`
	Root    bool   `json:"root,omitempty"`
	Current bool   `json:"current,omitempty"`
}

// Edge is one observed transition, aggregated across the journal.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Op    string `json:"op"`
	Count int    `json:"count"`
}

// Graph is an aggregated navigation flow. Nodes and edges appear in
// first-seen order, which makes output deterministic for a given journal.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

type edgeKey struct {
	from, to, op string
}

// Build aggregates journal entries into a flow graph. Rejected operations
// are skipped (they moved nothing), as are operations that left the top
// unchanged, so the graph contains only real movements. The node for the
// latest position is marked Current.
func Build(entries []journal.Entry) *Graph {
	g := &Graph{}
	nodeIdx := make(map[string]int)
	edgeIdx := make(map[edgeKey]int)

	node := func(label string) int {
		if i, ok := nodeIdx[label]; ok {
			return i
		}
		g.Nodes = append(g.Nodes, Node{ID: label, Root: label == RootLabel})
		nodeIdx[label] = len(g.Nodes) - 1
		return len(g.Nodes) - 1
	}

	var lastTo string
	var moved bool
	for _, e := range entries {
		if e.Rejected() {
			continue
		}
		from, to := labelOf(e.From), labelOf(e.To)
		lastTo, moved = to, true
		if from == to {
			continue
		}

		node(from)
		g.Nodes[node(to)].Visits++

		key := edgeKey{from, to, e.Op}
		if i, ok := edgeIdx[key]; ok {
			g.Edges[i].Count++
			continue
		}
		g.Edges = append(g.Edges, Edge{From: from, To: to, Op: e.Op, Count: 1})
		edgeIdx[key] = len(g.Edges) - 1
	}

	if moved {
		g.Nodes[node(lastTo)].Current = true
	}
	return g
}

// ChainFromIDs builds the linear flow of a stack snapshot: root, then each
// record bottom-to-top. This is how saved sessions render, where only the
// final path is known and not the journey. The top is marked Current; an
// empty snapshot yields just the root.
func ChainFromIDs(ids []string) *Graph {
	g := &Graph{Nodes: []Node{{ID: RootLabel, Root: true}}}
	from := RootLabel
	for _, id := range ids {
		g.Nodes = append(g.Nodes, Node{ID: id, Visits: 1})
		g.Edges = append(g.Edges, Edge{From: from, To: id, Op: nav.OpPush.String(), Count: 1})
		from = id
	}
	g.Nodes[len(g.Nodes)-1].Current = true
	return g
}

func labelOf(id string) string {
	if id == "" {
		return RootLabel
	}
	return id
}
