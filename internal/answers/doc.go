// Package answers defines the raw answer record collected by the wizard and
// the parser for non-interactive answers files.
//
// An answers file is YAML (JSON is accepted as a YAML subset) with camelCase
// keys matching the wizard's questions:
//
//	language: ts
//	projectName: shop-api
//	domain: backend
//	architecture: Feature-based (modular)
//	framework: Express.js
//	features:
//	  database:
//	    sql: {type: PostgreSQL, orm: Prisma}
//	  containerization: docker
//
// Files are validated against the embedded answers schema before decoding so
// that unknown keys and wrong types are reported with their paths.
package answers
