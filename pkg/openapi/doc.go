// Package openapi adapts OpenAPI operations into definition trees. The
// adapter walks one operation's JSON request body schema and emits a
// model.GroupDef whose fields carry labels, placeholders, choices, and
// rules derived from the schema constraints. kin-openapi does the document
// loading and reference resolution.
package openapi
