// Package cli holds the terminal-facing helpers shared by the handoff
// commands: structured logging, severity-colored diagnostic printing,
// interactive prompts and schema file watching.
package cli
