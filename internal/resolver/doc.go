// Package resolver turns raw wizard answers into a validated, enriched
// configuration.
//
// Resolution checks the answers against the capability catalog. Hard rules
// (unknown language or domain, an architecture or framework outside the
// domain's lists, a bad project name) are collected together and returned as
// a single *ValidationError. Soft rules only produce warnings; the values
// they flag are kept as given.
package resolver
