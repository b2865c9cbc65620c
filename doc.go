// Package formmodel assembles the form toolkit into one import: the
// value/validation tree from pkg/model, definition documents loaded and
// parsed through pkg/definition, OpenAPI adaptation from pkg/openapi,
// interactive filling via pkg/prompt, and rendered validation reports
// from pkg/report. The root package only re-exports and wires; the
// behaviour lives in the subpackages.
package formmodel
