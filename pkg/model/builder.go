package model

import "fmt"

// Options configure every node built from one definition tree. The value
// is fixed when Build runs and shared read-only by all resulting nodes.
type Options struct {
	// ValidateAllRules switches rule evaluation from stopping at the
	// first rejection to running the whole chain and collecting every
	// rejection.
	ValidateAllRules bool
}

// Option mutates Options during construction.
type Option func(*Options)

// NewOptions applies the supplied options to a zero Options value.
func NewOptions(options ...Option) Options {
	var opts Options
	for _, apply := range options {
		if apply == nil {
			continue
		}
		apply(&opts)
	}
	return opts
}

// WithValidateAllRules switches every built node to exhaustive rule
// evaluation.
func WithValidateAllRules(enabled bool) Option {
	return func(o *Options) {
		o.ValidateAllRules = enabled
	}
}

// Build walks a definition tree and produces the live node tree. Scalar
// definitions become leaf fields, group definitions recurse into nested
// groups, and the same Options value reaches every node. Malformed
// definitions (nil entries, unnamed or duplicate children) are build
// errors, never validation results.
func Build(def GroupDef, options ...Option) (*Group, error) {
	return buildGroup(def, NewOptions(options...))
}

// MustBuild is Build panicking on error.
func MustBuild(def GroupDef, options ...Option) *Group {
	group, err := Build(def, options...)
	if err != nil {
		panic(err)
	}
	return group
}

func buildGroup(def GroupDef, opts Options) (*Group, error) {
	group := &Group{
		name:     def.Name,
		names:    make([]string, 0, len(def.Fields)),
		children: make(map[string]Node, len(def.Fields)),
	}

	attach := func(name string, node Node) error {
		if name == "" {
			return fmt.Errorf("model: definition %q contains an unnamed entry", def.Name)
		}
		if _, exists := group.children[name]; exists {
			return fmt.Errorf("model: duplicate field name %q in definition %q", name, def.Name)
		}
		group.children[name] = node
		group.names = append(group.names, name)
		return nil
	}

	for _, entry := range def.Fields {
		switch d := entry.(type) {
		case FieldDef:
			if err := attach(d.Name, NewField(d, opts)); err != nil {
				return nil, err
			}
		case GroupDef:
			nested, err := buildGroup(d, opts)
			if err != nil {
				return nil, err
			}
			if err := attach(d.Name, nested); err != nil {
				return nil, err
			}
		case nil:
			return nil, fmt.Errorf("model: definition %q contains a nil entry", def.Name)
		default:
			return nil, fmt.Errorf("model: unsupported definition type %T in %q", entry, def.Name)
		}
	}

	return group, nil
}
