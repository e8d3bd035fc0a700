package plan

import "strings"

// Kind identifies the type of an Action.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
	KindCommand   Kind = "command"
)

// DefaultWorkdir is where a command's target directory is mounted inside its
// container.
const DefaultWorkdir = "/app"

// Container images used for scaffolding commands.
const (
	NodeImage   = "node:20-alpine"
	PythonImage = "python:3.12-alpine"
)

// Action is one step of a plan. Target is slash-separated and relative to the
// project root. Content is set for files only; Command, Image and Workdir for
// commands only.
type Action struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Target  string `json:"target" yaml:"target"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
	Image   string `json:"image,omitempty" yaml:"image,omitempty"`
	Workdir string `json:"workdir,omitempty" yaml:"workdir,omitempty"`
}

// Directory returns an action that ensures target exists.
func Directory(target string) Action {
	return Action{Kind: KindDirectory, Target: target}
}

// File returns an action that writes content to target, overwriting it.
func File(target, content string) Action {
	return Action{Kind: KindFile, Target: target, Content: content}
}

// Command returns an action that runs command inside image with target
// mounted at DefaultWorkdir.
func Command(target, command, image string) Action {
	return Action{Kind: KindCommand, Target: target, Command: command, Image: image, Workdir: DefaultWorkdir}
}

// IsMonorepoArchitecture reports whether an architecture name selects the
// monorepo layout: the name mentions "monorepo" in any case, or is exactly
// "Monorepo".
func IsMonorepoArchitecture(name string) bool {
	return strings.Contains(strings.ToLower(name), "monorepo") || name == "Monorepo"
}

// ApplyWorkdir sets the container workdir of every command action to dir.
// An empty dir leaves the plan unchanged.
func ApplyWorkdir(actions []Action, dir string) {
	if dir == "" {
		return
	}
	for i := range actions {
		if actions[i].Kind == KindCommand {
			actions[i].Workdir = dir
		}
	}
}

// Counts tallies a plan by kind.
func Counts(actions []Action) map[Kind]int {
	counts := make(map[Kind]int)
	for _, a := range actions {
		counts[a.Kind]++
	}
	return counts
}
