package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Invocation describes one command to run.
type Invocation struct {
	// Dir is the absolute host directory the command runs in.
	Dir string
	// Command is passed to `sh -c`.
	Command string
	// Image is the container image. Host runners ignore it.
	Image string
	// Workdir is where Dir is mounted inside the container.
	Workdir string
}

// Runner executes an Invocation. A non-zero exit is reported as a
// *CommandError.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// Supported runner names.
const (
	NameDocker = "docker"
	NamePodman = "podman"
	NameHost   = "host"
	NameSkip   = "skip"
)

// Names lists the runner names Dispatch accepts.
func Names() []string {
	return []string{NameDocker, NamePodman, NameHost, NameSkip}
}

// Options configures the runners built by Dispatch.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func (o Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o Options) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Dispatch returns the runner registered under name. Unknown names produce a
// runner whose every Run fails.
func Dispatch(name string, opts Options) Runner {
	switch name {
	case NameDocker, NamePodman:
		return &ContainerRunner{Binary: name, Options: opts}
	case NameHost:
		return &HostRunner{Options: opts}
	case NameSkip:
		return &SkipRunner{Logger: opts.Logger}
	default:
		return &unknownRunner{name: name}
	}
}

type unknownRunner struct {
	name string
}

func (u *unknownRunner) Run(_ context.Context, _ Invocation) error {
	return fmt.Errorf("unknown runner %q: supported runners are %s", u.name, strings.Join(Names(), ", "))
}

// SkipRunner logs each command and reports success without running it.
type SkipRunner struct {
	Logger *slog.Logger
}

func (s *SkipRunner) Run(_ context.Context, inv Invocation) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("skipping command", "dir", inv.Dir, "image", inv.Image, "command", inv.Command)
	return nil
}
