package formmodel

import (
	pkgdefinition "github.com/kaid/stupid-form-model/pkg/definition"
	"github.com/kaid/stupid-form-model/pkg/model"
)

// Rule checks a single value and returns a rejection message, or the
// empty string when the value passes. Alias exported via the root
// package for convenience.
type Rule = model.Rule

// Node is the contract shared by fields and groups in a form tree.
type Node = model.Node

// Field aliases model.Field for callers that assemble trees directly.
type Field = model.Field

// Group aliases model.Group, the branch node of a form tree.
type Group = model.Group

// Def is one entry of a definition tree accepted by Build.
type Def = model.Def

// FieldDef describes one leaf field ahead of construction.
type FieldDef = model.FieldDef

// GroupDef describes a group and its children ahead of construction.
type GroupDef = model.GroupDef

// Result carries the rejection messages gathered by a validation pass.
type Result = model.Result

// Definition pairs a parsed document title with its root group definition.
type Definition = pkgdefinition.Definition

// Rejection messages used by the builtin rules.
const (
	RequiredMessage   = model.RequiredMessage
	NumericMessage    = model.NumericMessage
	AtLeastOneMessage = model.AtLeastOneMessage
)

// Required rejects nil values and empty strings.
func Required(value any) string {
	return model.Required(value)
}

// Numeric rejects values that cannot be read as a number.
func Numeric(value any) string {
	return model.Numeric(value)
}

// AtLeastOne rejects empty selections.
func AtLeastOne(value any) string {
	return model.AtLeastOne(value)
}

// Build constructs a form tree from its definition.
func Build(def GroupDef, options ...model.Option) (*Group, error) {
	return model.Build(def, options...)
}

// MustBuild is Build that panics on invalid definitions.
func MustBuild(def GroupDef, options ...model.Option) *Group {
	return model.MustBuild(def, options...)
}

// WithValidateAllRules makes validation record every rejection per field
// instead of stopping at the first failing rule.
func WithValidateAllRules(enabled bool) model.Option {
	return model.WithValidateAllRules(enabled)
}

// BuildFromDefinition builds the form tree described by a parsed
// definition document.
func BuildFromDefinition(def Definition, options ...model.Option) (*Group, error) {
	return model.Build(def.Root, options...)
}
