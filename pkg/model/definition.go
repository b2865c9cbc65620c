package model

// Def is one entry of a definition tree accepted by Build. The two
// implementations are FieldDef for leaves and GroupDef for nested groups;
// the builder pattern-matches on them instead of probing marker keys.
type Def interface {
	isDef()
}

// FieldDef declares a leaf field.
type FieldDef struct {
	// Name is the property key the field occupies within its group.
	Name string
	// Label and Placeholder are display metadata, opaque to validation.
	Label       string
	Placeholder string
	// Required appends the built-in Required rule to the end of Rules at
	// build time.
	Required bool
	// InitialValue seeds the field and is retained (deep-copied) as the
	// reset snapshot. Absent means nil.
	InitialValue any
	// Rules run in order on Validate. Nil entries are dropped.
	Rules []Rule
	// Choices lists selectable options for select-style fields.
	Choices []string
}

func (FieldDef) isDef() {}

// GroupDef declares a named group of definitions. Fields keeps the
// enumeration order of the resulting children.
type GroupDef struct {
	Name   string
	Fields []Def
}

func (GroupDef) isDef() {}
