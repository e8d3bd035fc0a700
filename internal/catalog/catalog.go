package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/nogeniuss/ZygoKit/internal/schema"
	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// SupportedVersions is the semver constraint a catalog version must satisfy.
const SupportedVersions = "^1.0.0"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// LoadError reports every problem found while loading a catalog.
type LoadError struct {
	Issues []string
}

func (e *LoadError) Error() string {
	return "invalid catalog:\n  - " + strings.Join(e.Issues, "\n  - ")
}

// document mirrors catalog.yaml.
type document struct {
	Version   string            `yaml:"version"`
	Languages ordered[Language] `yaml:"languages"`
	Domains   ordered[Domain]   `yaml:"domains"`
	Features  FeatureCatalog    `yaml:"features"`
}

// ordered decodes a YAML mapping while remembering key order.
type ordered[T any] struct {
	keys   []string
	values map[string]T
}

func (o *ordered[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	o.values = make(map[string]T, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var v T
		if err := node.Content[i+1].Decode(&v); err != nil {
			return err
		}
		if _, dup := o.values[key]; !dup {
			o.keys = append(o.keys, key)
		}
		o.values[key] = v
	}
	return nil
}

// Default returns the embedded catalog, loading it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(embeddedCatalog)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("loading embedded catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// Load parses, schema-validates, and checks the invariants of a catalog
// document. All problems are collected into a single *LoadError.
func Load(data []byte) (*Catalog, error) {
	res, err := schema.Validate(schema.Catalog, data)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		le := &LoadError{}
		for _, issue := range res.Issues {
			le.Issues = append(le.Issues, issue.String())
		}
		return nil, le
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		Version:       doc.Version,
		Languages:     make(map[string]Language, len(doc.Languages.keys)),
		LanguageOrder: doc.Languages.keys,
		Domains:       make(map[string]Domain, len(doc.Domains.keys)),
		DomainOrder:   doc.Domains.keys,
		Features:      doc.Features,
	}
	for _, id := range doc.Languages.keys {
		lang := doc.Languages.values[id]
		lang.ID = id
		c.Languages[id] = lang
	}
	for _, id := range doc.Domains.keys {
		d := doc.Domains.values[id]
		d.ID = id
		c.Domains[id] = d
	}

	if issues := c.check(); len(issues) > 0 {
		return nil, &LoadError{Issues: issues}
	}
	return c, nil
}

// check verifies the version gate and the framework/architecture invariants.
func (c *Catalog) check() []string {
	var issues []string

	if err := checkVersion(c.Version); err != nil {
		issues = append(issues, err.Error())
	}

	for _, id := range c.DomainOrder {
		d := c.Domains[id]
		if dup := firstDuplicate(d.Architectures); dup != "" {
			issues = append(issues, fmt.Sprintf("domains.%s.architectures: duplicate %q", id, dup))
		}
		for _, l := range d.Frameworks.lists() {
			if len(l.names) == 0 {
				issues = append(issues, fmt.Sprintf("domains.%s.%s: list is empty", id, l.label))
				continue
			}
			if dup := firstDuplicate(l.names); dup != "" {
				issues = append(issues, fmt.Sprintf("domains.%s.%s: duplicate %q", id, l.label, dup))
			}
		}
	}
	return issues
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("version %q is not semver: %w", version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported version range: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("catalog version %s is not supported (need %s)", v, SupportedVersions)
	}
	return nil
}

func firstDuplicate(list []string) string {
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		if seen[v] {
			return v
		}
		seen[v] = true
	}
	return ""
}

// Language looks up a language by ID.
func (c *Catalog) Language(id string) (Language, bool) {
	l, ok := c.Languages[id]
	return l, ok
}

// Domain looks up a domain by ID.
func (c *Catalog) Domain(id string) (Domain, bool) {
	d, ok := c.Domains[id]
	return d, ok
}

// Frameworks returns the effective framework list for a domain and language.
func (c *Catalog) Frameworks(domain, lang string) []string {
	d, ok := c.Domains[domain]
	if !ok {
		return nil
	}
	return d.Frameworks.Effective(lang)
}

// ORMs returns the SQL ORMs offered for a language. Python has its own list;
// JavaScript and TypeScript projects share the TypeScript list.
func (c *Catalog) ORMs(lang string) []string {
	return c.Features.Database.SQL.ORMs[ormKey(lang)]
}

func ormKey(lang string) string {
	if lang == "py" {
		return "py"
	}
	return "ts"
}

// UnitTestFrameworks returns the unit-test frameworks for a language.
func (c *Catalog) UnitTestFrameworks(lang string) []string {
	return c.Features.Testing[lang].Unit
}

// Linters returns the linters for a language.
func (c *Catalog) Linters(lang string) []string {
	return c.Features.Linting[lang]
}

// Formatters returns the formatters for a language.
func (c *Catalog) Formatters(lang string) []string {
	return c.Features.Formatting[lang]
}

// Contains reports whether v is in list. It is used by callers checking
// answers against catalog lists.
func Contains(list []string, v string) bool {
	return contains(list, v)
}
