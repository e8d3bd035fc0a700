// Package catalog holds the static capability catalog: the languages, domains,
// architectures, frameworks, and optional features the wizard knows about.
//
// The catalog is authored as catalog.yaml, embedded in the binary, validated
// against the catalog JSON Schema, and loaded once per process. It is never
// mutated after loading.
package catalog
