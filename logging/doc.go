// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers a richer DeckLogger with contextual
// helpers (workspace, component) and domain specific helpers for dispatches,
// lifecycle transitions and match scoring.
package logging
