// Package schema validates YAML documents against the JSON Schemas embedded
// in the binary: the capability catalog and user-supplied answers files.
package schema
