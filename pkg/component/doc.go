// Package component defines the handoff component model: the component
// envelope (code, title, tags) plus the property definitions that describe
// its configurable fields. Registry payloads are produced by a JavaScript
// toolchain and arrive with loose shapes, so decoding is deliberately
// lenient; judging the result is the validation package's job.
package component
