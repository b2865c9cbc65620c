package model

import "strings"

// Group is the composite node of a form tree. It owns an insertion-ordered
// mapping from property name to child node (leaf or nested group) and
// proxies every Node operation onto its children; beyond the mapping it
// holds no mutable state of its own.
type Group struct {
	name     string
	names    []string
	children map[string]Node
}

var _ Node = (*Group)(nil)

// Name returns the property name the group occupies within its parent.
// The root group keeps its definition name, which may be empty.
func (g *Group) Name() string { return g.name }

// Names returns the property names of the direct children in definition
// order.
func (g *Group) Names() []string {
	return append([]string(nil), g.names...)
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.names) }

// Child returns the direct child registered under name.
func (g *Group) Child(name string) (Node, bool) {
	child, ok := g.children[name]
	return child, ok
}

// Lookup resolves a dotted path to a node anywhere in the subtree.
func (g *Group) Lookup(path string) (Node, bool) {
	if path == "" {
		return nil, false
	}
	head, rest, nested := strings.Cut(path, ".")
	child, ok := g.children[head]
	if !ok {
		return nil, false
	}
	if !nested {
		return child, true
	}
	group, ok := child.(*Group)
	if !ok {
		return nil, false
	}
	return group.Lookup(rest)
}

// Field resolves a dotted path to a leaf field.
func (g *Group) Field(path string) (*Field, bool) {
	node, ok := g.Lookup(path)
	if !ok {
		return nil, false
	}
	field, ok := node.(*Field)
	return field, ok
}

// Walk visits every node in the subtree depth-first in definition order,
// calling fn with each node's dotted path. A non-nil error from fn stops
// the walk and is returned.
func (g *Group) Walk(fn func(path string, node Node) error) error {
	return g.walk("", fn)
}

func (g *Group) walk(prefix string, fn func(path string, node Node) error) error {
	for _, name := range g.names {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		child := g.children[name]
		if err := fn(path, child); err != nil {
			return err
		}
		if nested, ok := child.(*Group); ok {
			if err := nested.walk(path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Value builds and returns a fresh map of child values keyed by property
// name. Nested groups contribute nested maps, so the result mirrors the
// record shape the tree was built from.
func (g *Group) Value() any {
	out := make(map[string]any, len(g.names))
	for _, name := range g.names {
		out[name] = g.children[name].Value()
	}
	return out
}

// SetValue distributes entries of a map onto the group's children. Every
// known property name is written: names present in the map receive their
// value, names missing from it receive nil, and either write marks the
// child touched. Keys the group does not know are ignored. A value that
// is not a map[string]any behaves like an empty map.
func (g *Group) SetValue(v any) {
	values, _ := v.(map[string]any)
	for _, name := range g.names {
		g.children[name].SetValue(values[name])
	}
}

// Valid reports whether every child in the subtree is valid.
func (g *Group) Valid() bool {
	for _, name := range g.names {
		if !g.children[name].Valid() {
			return false
		}
	}
	return true
}

// Validate validates every child and collects the per-child results keyed
// by property name. All children run to completion before it returns;
// evaluation order across children carries no meaning.
func (g *Group) Validate() Result {
	children := make(map[string]Result, len(g.names))
	for _, name := range g.names {
		children[name] = g.children[name].Validate()
	}
	return Result{Children: children}
}

// Reset resets every child.
func (g *Group) Reset() {
	for _, name := range g.names {
		g.children[name].Reset()
	}
}
