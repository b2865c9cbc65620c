package model

// Node is the uniform contract shared by leaf fields and groups. Host
// bindings read and write values through it, trigger validation, and reset
// whole subtrees without caring which node kind they hold.
type Node interface {
	// Value returns the node's current value: the stored scalar for a
	// field, a freshly built map for a group.
	Value() any
	// SetValue writes a value into the node and marks it touched. Fields
	// store the value verbatim; groups distribute map entries onto their
	// children.
	SetValue(v any)
	// Valid reports the node's validity under the touched/rejections
	// policy documented on Field and Group.
	Valid() bool
	// Validate runs the rules in the subtree and stores their outcome.
	Validate() Result
	// Reset restores initial values and clears touched flags across the
	// subtree.
	Reset()
}

// Result carries the outcome of one Validate call. A field fills Messages
// with its rejections; a group fills Children with one result per child,
// keyed by property name.
type Result struct {
	Messages []string          `json:"messages,omitempty"`
	Children map[string]Result `json:"children,omitempty"`
}

// OK reports whether no rejection was recorded anywhere in the result.
func (r Result) OK() bool {
	if len(r.Messages) > 0 {
		return false
	}
	for _, child := range r.Children {
		if !child.OK() {
			return false
		}
	}
	return true
}

// Flatten maps dotted node paths to their rejection messages, skipping
// paths that recorded none. A bare field result flattens under the empty
// path.
func (r Result) Flatten() map[string][]string {
	out := make(map[string][]string)
	r.flattenInto("", out)
	return out
}

func (r Result) flattenInto(path string, out map[string][]string) {
	if len(r.Messages) > 0 {
		out[path] = append([]string(nil), r.Messages...)
	}
	for name, child := range r.Children {
		childPath := name
		if path != "" {
			childPath = path + "." + name
		}
		child.flattenInto(childPath, out)
	}
}
