// Package fieldset turns validated property definitions into presentation
// form fields: generated IDs, sanitized machine names, humanized labels, and
// recursive children for group and array properties. The builder performs no
// validation of its own; feed it components the validation package has
// already checked.
package fieldset
