package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// stderrTailSize is how much trailing stderr a CommandError keeps.
const stderrTailSize = 4096

// CommandError reports a command that exited with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
	// Stderr holds the tail of the command's standard error.
	Stderr string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command exited with status %d: %s", e.ExitCode, e.Command)
	if tail := strings.TrimSpace(e.Stderr); tail != "" {
		msg += "\n" + tail
	}
	return msg
}

// ContainerRunner runs commands in a throwaway container:
//
//	<binary> run --rm -v <dir>:<workdir> -w <workdir> <image> sh -c <command>
//
// An invocation without an image runs on the host.
type ContainerRunner struct {
	// Binary is the container CLI, "docker" or "podman".
	Binary string
	Options
}

// Args returns the container CLI arguments for inv.
func (r *ContainerRunner) Args(inv Invocation) []string {
	workdir := inv.Workdir
	if workdir == "" {
		workdir = "/app"
	}
	return []string{
		"run", "--rm",
		"-v", inv.Dir + ":" + workdir,
		"-w", workdir,
		inv.Image,
		"sh", "-c", inv.Command,
	}
}

func (r *ContainerRunner) Run(ctx context.Context, inv Invocation) error {
	if inv.Image == "" {
		return (&HostRunner{Options: r.Options}).Run(ctx, inv)
	}
	binary := r.Binary
	if binary == "" {
		binary = NameDocker
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%s runner requires %s on PATH: %w", binary, binary, err)
	}

	args := r.Args(inv)
	r.logger().Debug("running container command", "binary", binary, "image", inv.Image, "dir", inv.Dir, "command", inv.Command)
	return run(exec.CommandContext(ctx, path, args...), binary+" "+strings.Join(args, " "), r.Options)
}

// HostRunner runs commands with the host shell.
type HostRunner struct {
	// Shell defaults to "sh".
	Shell string
	Options
}

func (h *HostRunner) Run(ctx context.Context, inv Invocation) error {
	shell := h.Shell
	if shell == "" {
		shell = "sh"
	}
	path, err := exec.LookPath(shell)
	if err != nil {
		return fmt.Errorf("host runner requires %s: %w", shell, err)
	}

	cmd := exec.CommandContext(ctx, path, "-c", inv.Command)
	cmd.Dir = inv.Dir
	h.logger().Debug("running host command", "dir", inv.Dir, "command", inv.Command)
	return run(cmd, inv.Command, h.Options)
}

// run streams the command's output to the configured writers and converts a
// non-zero exit into a *CommandError.
func run(cmd *exec.Cmd, display string, opts Options) error {
	tail := &tailBuffer{max: stderrTailSize}
	cmd.Stdout = opts.stdout()
	cmd.Stderr = io.MultiWriter(opts.stderr(), tail)

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Command: display, ExitCode: exitErr.ExitCode(), Stderr: tail.String()}
	}
	return fmt.Errorf("running %s: %w", display, err)
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf bytes.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) >= t.max {
		t.buf.Reset()
		t.buf.Write(p[len(p)-t.max:])
		return n, nil
	}
	t.buf.Write(p)
	if over := t.buf.Len() - t.max; over > 0 {
		t.buf.Next(over)
	}
	return n, nil
}

func (t *tailBuffer) String() string {
	return t.buf.String()
}
