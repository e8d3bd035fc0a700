// Package plan compiles a resolved configuration into an ordered list of
// actions: directories to create, files to write, and scaffolding commands to
// run. Compilation is pure. It performs no I/O, never fails, and returns the
// same list for the same configuration, so a plan can be printed or dumped
// before anything touches the disk.
//
// Choices the compiler has no branch for (an unknown architecture, framework,
// or tool) produce no actions for that branch.
package plan
