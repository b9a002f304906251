// Package openapi bootstraps component definitions from OpenAPI 3 documents.
// Object schemas under #/components/schemas are mapped to components on a
// best effort basis; the result is meant to be reviewed and validated like
// any hand written definition, not trusted blindly.
package openapi
