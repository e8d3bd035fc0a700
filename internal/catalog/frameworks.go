package catalog

import (
	"fmt"
	"sort"

	"go.yaml.in/yaml/v3"
)

// FrameworkSource is the framework table of a domain. It is either a flat list
// shared by every language or a per-language table; the zero value has no
// frameworks at all.
type FrameworkSource struct {
	flat        []string
	isFlat      bool
	perLanguage map[string][]string
	order       []string
}

// Flat returns a source whose list applies to every language.
func Flat(names []string) FrameworkSource {
	return FrameworkSource{flat: append([]string(nil), names...), isFlat: true}
}

// PerLanguage returns a source keyed by language ID. The cross-language union
// follows order; table keys missing from order come after it, sorted.
func PerLanguage(order []string, table map[string][]string) FrameworkSource {
	s := FrameworkSource{perLanguage: make(map[string][]string, len(table))}
	for _, lang := range order {
		names, ok := table[lang]
		if _, dup := s.perLanguage[lang]; !ok || dup {
			continue
		}
		s.perLanguage[lang] = append([]string(nil), names...)
		s.order = append(s.order, lang)
	}
	var rest []string
	for lang := range table {
		if _, seen := s.perLanguage[lang]; !seen {
			rest = append(rest, lang)
		}
	}
	sort.Strings(rest)
	for _, lang := range rest {
		s.perLanguage[lang] = append([]string(nil), table[lang]...)
		s.order = append(s.order, lang)
	}
	return s
}

// IsFlat reports whether the source is a single list for all languages.
func (s FrameworkSource) IsFlat() bool { return s.isFlat }

// Languages returns the language keys of a per-language source in order.
func (s FrameworkSource) Languages() []string {
	return append([]string(nil), s.order...)
}

// For returns the language-specific list, if the source has one.
func (s FrameworkSource) For(lang string) ([]string, bool) {
	if s.isFlat {
		return nil, false
	}
	names, ok := s.perLanguage[lang]
	return names, ok
}

// Effective returns the frameworks valid for lang. A flat source returns its
// list. A per-language source returns the list for lang when it exists and is
// non-empty; otherwise the deduplicated union of every language's list, in
// key order, first occurrence kept.
func (s FrameworkSource) Effective(lang string) []string {
	if s.isFlat {
		return append([]string(nil), s.flat...)
	}
	if names := s.perLanguage[lang]; len(names) > 0 {
		return append([]string(nil), names...)
	}

	seen := make(map[string]bool)
	var union []string
	for _, key := range s.order {
		for _, name := range s.perLanguage[key] {
			if !seen[name] {
				seen[name] = true
				union = append(union, name)
			}
		}
	}
	return union
}

// lists returns every list in the source, labelled for error messages.
func (s FrameworkSource) lists() []labelled {
	if s.isFlat {
		return []labelled{{label: "frameworks", names: s.flat}}
	}
	out := make([]labelled, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, labelled{label: "frameworks." + key, names: s.perLanguage[key]})
	}
	return out
}

type labelled struct {
	label string
	names []string
}

// UnmarshalYAML accepts either a sequence (flat) or a mapping (per language).
func (s *FrameworkSource) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*s = Flat(names)
		return nil
	case yaml.MappingNode:
		var order []string
		table := make(map[string][]string)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			var names []string
			if err := node.Content[i+1].Decode(&names); err != nil {
				return err
			}
			if _, dup := table[key]; !dup {
				order = append(order, key)
			}
			table[key] = names
		}
		*s = PerLanguage(order, table)
		return nil
	default:
		return fmt.Errorf("line %d: frameworks must be a list or a mapping of language to list", node.Line)
	}
}

// MarshalYAML writes the source back in the shape it was read from.
func (s FrameworkSource) MarshalYAML() (interface{}, error) {
	if s.isFlat {
		return s.flat, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range s.order {
		var value yaml.Node
		if err := value.Encode(s.perLanguage[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, &value)
	}
	return node, nil
}
