// Package ui implements the LetHimCook terminal interface on bubbletea.
//
// # Architecture
//
// A single root Model owns the session and the mounted view. Each view
// with server interaction has its own sub-model carrying a random
// instance id; commands capture that id and stamp it on their result
// message. Navigation replaces the sub-model, so a completion from a
// view the user already left no longer matches and is dropped in
// Update. Search and recipe loads additionally carry an engine
// generation so that, within one mounted view, only the newest
// in-flight request may publish its results.
//
// # Key handling
//
// Focused text inputs and open dialogs consume the keyboard first; the
// global bindings (view numbers, theme cycle, logout, quit) apply only
// when no view component is captive.
package ui
