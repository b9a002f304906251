// Handoff is a CLI for validating design-component property schemas.
//
// It fetches component definitions from a registry (or reads them from
// local files), walks every property tree and reports missing attributes
// and constraint violations in one pass.
//
// Usage:
//
//	# List registry components
//	handoff list
//
//	# Validate components from the registry
//	handoff validate hero-banner promo-card
//
//	# Validate local documents and re-run on save
//	handoff validate --dir components/ --watch
//
//	# Render an HTML preview
//	handoff preview hero-banner --theme handoff --variant dark --out preview.html
//
//	# Bootstrap component definitions from an OpenAPI document
//	handoff import api.yaml --out-dir components/
//
//	# Show version information
//	handoff version
//
// For complete documentation, see: https://github.com/goliatone/go-handoff
package main

func main() {
	Execute()
}
