// Package browser owns the state of one catalog browsing session.
//
// A Session is the single owner of the loaded catalog, the current criteria and
// the current page. Callers (the CLI and the terminal UI) drive it through
// explicit methods; there is no package-level state. The session is not safe
// for concurrent use: its owner serializes all calls, as a bubbletea Update loop
// or a single CLI invocation naturally does.
//
// State machine:
//
//	Loading --Load ok--> Ready --(criteria / page changes)--> Ready
//	Loading --Load err-> Failed (terminal, no retry)
package browser
