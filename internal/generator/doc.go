// Package generator materializes a compiled plan. An Executor applies
// directory, file and command actions strictly in order against a project
// root, delegating commands to a runner.Runner.
package generator
