// Package tui renders an interactive terminal workspace over an AgentDeck:
// a composer input line with highlighted mentions, a trigger-driven agent
// suggestion popup and live artifact progress cards. It is a thin adapter:
// all dispatch, matching and lifecycle behavior lives in the library
// packages; the TUI only translates key events into composer operations and
// repaints on artifact transitions.
package tui
