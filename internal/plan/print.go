package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Output formats accepted by Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Dump is a serializable plan.
type Dump struct {
	RunID   string   `json:"runId" yaml:"runId"`
	Project string   `json:"project" yaml:"project"`
	Actions []Action `json:"actions" yaml:"actions"`
}

// Outline returns one "<kind> <target>" line per action.
func Outline(actions []Action) string {
	var b strings.Builder
	for _, a := range actions {
		fmt.Fprintf(&b, "%-9s %s\n", a.Kind, a.Target)
	}
	return b.String()
}

// PrintPlan writes a numbered, human-readable listing of the plan followed by
// a summary of its actions by kind.
func PrintPlan(w io.Writer, d Dump) {
	fmt.Fprintf(w, "Plan for %s (run %s)\n\n", d.Project, d.RunID)

	width := len(fmt.Sprint(len(d.Actions)))
	for i, a := range d.Actions {
		fmt.Fprintf(w, "  %*d. %-9s %s\n", width, i+1, a.Kind, a.Target)
		if a.Kind == KindCommand {
			fmt.Fprintf(w, "  %*s  image: %s\n", width, "", a.Image)
			fmt.Fprintf(w, "  %*s  run:   %s\n", width, "", firstLine(a.Command))
		}
	}
	fmt.Fprintln(w)

	counts := Counts(d.Actions)
	var parts []string
	for _, k := range []Kind{KindCommand, KindDirectory, KindFile} {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, pluralize(k, n)))
		}
	}
	fmt.Fprintf(w, "  Total: %s\n", strings.Join(parts, ", "))
}

// Encode writes d in the named format.
func Encode(w io.Writer, format string, d Dump) error {
	switch format {
	case FormatText, "":
		PrintPlan(w, d)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding plan: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

func pluralize(k Kind, n int) string {
	if n == 1 {
		return string(k)
	}
	switch k {
	case KindDirectory:
		return "directories"
	default:
		return string(k) + "s"
	}
}
