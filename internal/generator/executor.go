package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/nogeniuss/ZygoKit/internal/plan"
	"github.com/nogeniuss/ZygoKit/internal/runner"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Executor applies plan actions under Root.
type Executor struct {
	// FS is rooted at the project directory.
	FS billy.Filesystem
	// Root is the absolute host path FS is rooted at. Command actions run in
	// Root joined with their target.
	Root   string
	Runner runner.Runner
	// Out receives one progress line per action. Nil discards them.
	Out    io.Writer
	Logger *slog.Logger
}

// Result lists the targets applied, by kind, in execution order.
type Result struct {
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
	Commands    []string `json:"commands"`
}

// Total is the number of actions applied.
func (r *Result) Total() int {
	return len(r.Directories) + len(r.Files) + len(r.Commands)
}

// New returns an Executor over the host directory root.
func New(root string, r runner.Runner, out io.Writer, logger *slog.Logger) (*Executor, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory %s: %w", root, err)
	}
	return &Executor{
		FS:     osfs.New(abs),
		Root:   abs,
		Runner: r,
		Out:    out,
		Logger: logger,
	}, nil
}

// Execute applies actions in order and stops at the first failure. Actions
// already applied are left in place.
func (e *Executor) Execute(ctx context.Context, actions []plan.Action) (*Result, error) {
	res := &Result{}
	for i, a := range actions {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		e.logger().Debug("applying action", "index", i+1, "kind", a.Kind, "target", a.Target)

		var err error
		switch a.Kind {
		case plan.KindDirectory:
			err = e.ensureDir(a.Target)
			if err == nil {
				res.Directories = append(res.Directories, a.Target)
			}
		case plan.KindFile:
			err = e.writeFile(a.Target, a.Content)
			if err == nil {
				res.Files = append(res.Files, a.Target)
			}
		case plan.KindCommand:
			err = e.runCommand(ctx, a)
			if err == nil {
				res.Commands = append(res.Commands, a.Target)
			}
		default:
			err = fmt.Errorf("unknown action kind %q", a.Kind)
		}
		if err != nil {
			return res, fmt.Errorf("action %d (%s %s): %w", i+1, a.Kind, a.Target, err)
		}
		e.progress(a)
	}
	return res, nil
}

func (e *Executor) ensureDir(target string) error {
	if err := e.FS.MkdirAll(clean(target), dirPerm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

func (e *Executor) writeFile(target, content string) error {
	name := clean(target)
	if dir := path.Dir(name); dir != "." {
		if err := e.FS.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating parent directory: %w", err)
		}
	}
	if err := util.WriteFile(e.FS, name, []byte(content), filePerm); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

func (e *Executor) runCommand(ctx context.Context, a plan.Action) error {
	if err := e.ensureDir(a.Target); err != nil {
		return err
	}
	if e.Runner == nil {
		return fmt.Errorf("no runner configured for command %q", a.Command)
	}
	return e.Runner.Run(ctx, runner.Invocation{
		Dir:     filepath.Join(e.Root, filepath.FromSlash(clean(a.Target))),
		Command: a.Command,
		Image:   a.Image,
		Workdir: a.Workdir,
	})
}

func (e *Executor) progress(a plan.Action) {
	if e.Out == nil {
		return
	}
	switch a.Kind {
	case plan.KindDirectory:
		fmt.Fprintf(e.Out, "  created  %s/\n", clean(a.Target))
	case plan.KindFile:
		fmt.Fprintf(e.Out, "  wrote    %s\n", clean(a.Target))
	case plan.KindCommand:
		fmt.Fprintf(e.Out, "  ran      %s (in %s)\n", a.Command, clean(a.Target))
	}
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// clean normalizes a slash-separated plan target. The result never escapes
// the project root.
func clean(target string) string {
	c := path.Clean("/" + target)
	if c == "/" {
		return "."
	}
	return c[1:]
}
