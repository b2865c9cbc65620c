package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kaid/stupid-form-model/pkg/model"
)

// Definition is a parsed definition document: the sanitized title plus
// the definition tree ready for model.Build.
type Definition struct {
	Title string
	Root  model.GroupDef
}

// ParseOptions configure document parsing.
type ParseOptions struct {
	// Rules resolves the rule names referenced by the document. Nil means
	// Builtin().
	Rules *Registry
}

// ParseOption mutates ParseOptions prior to parsing.
type ParseOption func(*ParseOptions)

// WithRules injects the registry used to resolve rule references.
func WithRules(registry *Registry) ParseOption {
	return func(opts *ParseOptions) {
		opts.Rules = registry
	}
}

// NewParseOptions applies a set of ParseOption values and returns the
// resulting configuration.
func NewParseOptions(options ...ParseOption) ParseOptions {
	cfg := ParseOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Parse decodes a definition document into a Definition. Documents may be
// JSON or YAML. The top-level fields key is a sequence, so document order
// becomes the field order of the built tree. Unknown rule names, unnamed
// or duplicate fields, and scalar settings on group entries are parse
// errors.
func Parse(doc Document, options ...ParseOption) (Definition, error) {
	opts := NewParseOptions(options...)
	registry := opts.Rules
	if registry == nil {
		registry = Builtin()
	}

	file, err := decodeDocument(doc)
	if err != nil {
		return Definition{}, err
	}
	if len(file.Fields) == 0 {
		return Definition{}, fmt.Errorf("definition: document %s declares no fields", doc.Location())
	}

	root, err := groupFromEntries(strings.TrimSpace(file.Name), file.Fields, registry, doc.Location())
	if err != nil {
		return Definition{}, err
	}

	return Definition{Title: sanitizeDisplay(file.Title), Root: root}, nil
}

type documentFile struct {
	Title  string      `json:"title" yaml:"title"`
	Name   string      `json:"name" yaml:"name"`
	Fields []entryFile `json:"fields" yaml:"fields"`
}

type entryFile struct {
	Name        string      `json:"name" yaml:"name"`
	Label       string      `json:"label" yaml:"label"`
	Placeholder string      `json:"placeholder" yaml:"placeholder"`
	Required    bool        `json:"required" yaml:"required"`
	Initial     any         `json:"initial" yaml:"initial"`
	Rules       []string    `json:"rules" yaml:"rules"`
	Choices     []string    `json:"choices" yaml:"choices"`
	Fields      []entryFile `json:"fields" yaml:"fields"`
}

func decodeDocument(doc Document) (documentFile, error) {
	raw := doc.Raw()
	if len(bytes.TrimSpace(raw)) == 0 {
		return documentFile{}, fmt.Errorf("definition: document %s is empty", doc.Location())
	}

	var file documentFile
	if err := json.Unmarshal(raw, &file); err == nil {
		return file, nil
	}
	if err := yaml.Unmarshal(raw, &file); err == nil {
		return file, nil
	}
	return documentFile{}, fmt.Errorf("definition: parse %s: invalid JSON or YAML", doc.Location())
}

func groupFromEntries(name string, entries []entryFile, registry *Registry, location string) (model.GroupDef, error) {
	group := model.GroupDef{
		Name:   name,
		Fields: make([]model.Def, 0, len(entries)),
	}
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		entryName := strings.TrimSpace(entry.Name)
		if entryName == "" {
			return model.GroupDef{}, fmt.Errorf("definition: document %s contains an unnamed field", location)
		}
		if _, exists := seen[entryName]; exists {
			return model.GroupDef{}, fmt.Errorf("definition: duplicate field %q (document %s)", entryName, location)
		}
		seen[entryName] = struct{}{}

		if len(entry.Fields) > 0 {
			// A nested field list marks a group entry; groups carry no
			// scalar settings of their own.
			if entry.Required || entry.Initial != nil || len(entry.Rules) > 0 ||
				len(entry.Choices) > 0 || entry.Label != "" || entry.Placeholder != "" {
				return model.GroupDef{}, fmt.Errorf("definition: group %q carries scalar field settings (document %s)", entryName, location)
			}
			nested, err := groupFromEntries(entryName, entry.Fields, registry, location)
			if err != nil {
				return model.GroupDef{}, err
			}
			group.Fields = append(group.Fields, nested)
			continue
		}

		rules := make([]model.Rule, 0, len(entry.Rules))
		for _, ruleName := range entry.Rules {
			rule, err := registry.Get(strings.TrimSpace(ruleName))
			if err != nil {
				return model.GroupDef{}, fmt.Errorf("definition: field %q (document %s): %w", entryName, location, err)
			}
			rules = append(rules, rule)
		}

		group.Fields = append(group.Fields, model.FieldDef{
			Name:         entryName,
			Label:        sanitizeDisplay(entry.Label),
			Placeholder:  sanitizeDisplay(entry.Placeholder),
			Required:     entry.Required,
			InitialValue: entry.Initial,
			Rules:        rules,
			Choices:      append([]string(nil), entry.Choices...),
		})
	}

	return group, nil
}
