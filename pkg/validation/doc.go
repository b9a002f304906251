// Package validation implements the handoff schema checks. The engine is a
// pair of pure functions over component values: every finding accumulates
// into an ordered diagnostic list, nothing short-circuits, and malformed
// input is never an error in the Go sense. Fetching, decoding, and
// presenting diagnostics live elsewhere.
package validation
