package answers

import (
	"fmt"
	"os"
	"strings"

	"github.com/nogeniuss/ZygoKit/internal/schema"
	"go.yaml.in/yaml/v3"
)

// SchemaError lists every schema violation found in an answers file.
type SchemaError struct {
	Source string
	Issues []schema.Issue
}

func (e *SchemaError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("%s does not match the answers schema:\n  - %s", e.Source, strings.Join(lines, "\n  - "))
}

// ParseFile reads and parses an answers file.
func ParseFile(path string) (*RawAnswers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parse(data, path)
}

// Parse validates data against the answers schema and decodes it.
func Parse(data []byte) (*RawAnswers, error) {
	return parse(data, "answers")
}

func parse(data []byte, source string) (*RawAnswers, error) {
	res, err := schema.Validate(schema.Answers, data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", source, err)
	}
	if !res.Valid {
		return nil, &SchemaError{Source: source, Issues: res.Issues}
	}

	var raw RawAnswers
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return &raw, nil
}
