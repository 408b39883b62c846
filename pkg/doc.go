// Package pkg provides the navstack libraries for stack-based navigation
// in terminal UIs.
//
// # Overview
//
// Navstack replaces ad-hoc view switching with a navigation stack:
// identifier-addressed records, push and three flavors of pop, direction
// tracking for transitions, and an observable current top that rendering
// code subscribes to. The pkg directory is organized around that core:
//
//  1. [nav] - The navigation core: identifier-keyed stack + controller
//  2. [navtea] - bubbletea binding (screens, deferred navigation messages)
//  3. [journal] - Bounded, concurrent-safe log of navigation events
//  4. [render/flow] - Navigation flow graphs (DOT, SVG, JSON)
//  5. [session] - Session persistence (memory, file, redis, mongo)
//  6. [inspect] - HTTP inspector serving live navigation state
//
// # Architecture
//
// The typical data flow through a navstack application:
//
//	tap/key/timer → navtea command (next turn)
//	         ↓
//	    [nav] controller (push/pop, direction, snapshot)
//	         ↓           ↘
//	    [navtea] render   [journal] events
//	                        ↓          ↓
//	              [inspect] HTTP   [render/flow] graphs
//
// # Quick Start
//
// Build a controller, navigate, react to snapshots:
//
//	ctrl := nav.New("home", nav.Options{})
//	cancel := ctrl.Subscribe(func(s nav.Snapshot[string]) {
//	    fmt.Println("render", s.Top.Payload, s.Direction)
//	})
//	defer cancel()
//
//	lib := ctrl.Push("library")
//	ctrl.PushWithID("book-42", "the book")
//	ctrl.PopTo(lib.ID)
//
// For terminal UIs, wrap screens with [navtea] instead of subscribing by
// hand; see examples/quickstart.
//
// # Main Packages
//
// [nav] - The core data structure and state machine. Stack is the bare
// ordered, ID-unique record sequence; Controller adds ID generation,
// direction tracking, publish/subscribe snapshots, and local recovery
// from duplicate-ID pushes and unknown pop targets. [nav/trigger] turns
// level-style UI state into edge-triggered navigation.
//
// [navtea] - The rendering collaborator for bubbletea: a Screen interface,
// a Model that shows the top of the stack (or the root screen), and
// navigation commands that apply on the next message-loop turn.
//
// [journal] - Records every controller event into a bounded ring that is
// safe to read from other goroutines. The designed fan-out point for
// tooling.
//
// [render/flow] - Aggregates journal entries into a flow graph (nodes are
// destinations, edges are transitions) and renders DOT, SVG via Graphviz,
// or JSON.
//
// [session] - Persists a stack's ID sequence so navigation resumes across
// runs; backends in subpackages: memory, file, redis, mongo.
//
// [inspect] - chi HTTP server exposing state, journal, and flow renders
// of a running program for debugging.
//
// [buildinfo] - ldflags-injected version information for the CLI.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/nav/...        # Core only
//	go test -run Example ./...   # Examples only
//
// [nav]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/nav
// [nav/trigger]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/nav/trigger
// [navtea]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/navtea
// [journal]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/journal
// [render/flow]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/render/flow
// [session]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/session
// [inspect]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/inspect
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/navstack/pkg/buildinfo
package pkg
