// Package navtea binds a navigation controller to bubbletea programs.
//
// # Overview
//
// The nav package deliberately knows nothing about rendering. This package
// is the rendering side: a [Model] that owns a [nav.Controller] of
// [Screen] payloads, renders whichever screen is on top (or the root
// screen when the stack is empty), and routes messages to it.
//
// # Screens
//
// A [Screen] is a bubbletea model minus the tea.Model contortions: Update
// returns a Screen, so screens compose without type assertions. Any screen
// can request navigation by returning one of the commands built by [Push],
// [PushWithID], [Pop], [PopTo], or [PopToRoot].
//
// # Deferred Navigation
//
// Navigation commands do not mutate the controller when they are created.
// Each returns a message that the Model applies on the next scheduling
// turn, riding the bubbletea message queue like any other event. A screen
// can therefore decide to navigate in the middle of its own Update or even
// construct the command inside View without reentrancy hazards: by the
// time the stack changes, the render pass that requested it is long done.
//
// # Transitions
//
// The Model tracks the controller's direction and exposes the matching
// transition name from its [Transitions] pair via [Model.Transition].
// What a transition name means - slide, fade, nothing at all - is the
// application's business; navtea only selects which one applies.
package navtea
