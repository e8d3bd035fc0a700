// Package runner executes plan commands. A Runner runs one shell command in a
// project directory, either inside a throwaway container (docker or podman),
// directly on the host, or not at all.
//
// Dispatch picks a Runner from its configured name.
package runner
