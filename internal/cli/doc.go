// Package cli defines the Cobra command tree for the zygokit CLI. The root
// command runs the interactive wizard; generate, plan and catalog expose the
// same pipeline non-interactively. Commands only handle flags, I/O and user
// interaction and delegate the work to the internal packages.
package cli
