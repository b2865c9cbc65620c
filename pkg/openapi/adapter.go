package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/kaid/stupid-form-model/pkg/model"
)

// AdapterOptions configure how schemas map onto definitions.
type AdapterOptions struct {
	// Labeler derives display labels for properties without a schema title.
	// Nil means DefaultLabeler.
	Labeler func(name string) string
}

// AdapterOption mutates AdapterOptions.
type AdapterOption func(*AdapterOptions)

// WithLabeler overrides the label derivation.
func WithLabeler(labeler func(name string) string) AdapterOption {
	return func(opts *AdapterOptions) {
		opts.Labeler = labeler
	}
}

// NewAdapterOptions applies the options and fills in defaults.
func NewAdapterOptions(options ...AdapterOption) AdapterOptions {
	cfg := AdapterOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.Labeler == nil {
		cfg.Labeler = DefaultLabeler
	}
	return cfg
}

// FormDef maps the request body schema of the named operation onto a
// definition tree. Object properties become fields in sorted property
// order, nested objects recurse into groups, and schema constraints become
// validation rules.
func FormDef(doc *openapi3.T, operationID string, options ...AdapterOption) (model.GroupDef, error) {
	if doc == nil {
		return model.GroupDef{}, errors.New("openapi: document is required")
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return model.GroupDef{}, errors.New("openapi: operation id is required")
	}
	opts := NewAdapterOptions(options...)

	operation := findOperation(doc, operationID)
	if operation == nil {
		return model.GroupDef{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	schema, err := requestBodySchema(operation)
	if err != nil {
		return model.GroupDef{}, fmt.Errorf("openapi: operation %q: %w", operationID, err)
	}

	return groupFromSchema(operationID, schema, opts)
}

// LoadFormDef loads an OpenAPI document from a file path and adapts the
// named operation.
func LoadFormDef(ctx context.Context, location string, operationID string, options ...AdapterOption) (model.GroupDef, error) {
	if strings.TrimSpace(location) == "" {
		return model.GroupDef{}, errors.New("openapi: document location is required")
	}

	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromFile(location)
	if err != nil {
		return model.GroupDef{}, fmt.Errorf("openapi: load document: %w", err)
	}
	return FormDef(doc, operationID, options...)
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

var mediaTypePreference = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

func requestBodySchema(operation *openapi3.Operation) (*openapi3.Schema, error) {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil, errors.New("request body is missing")
	}

	content := operation.RequestBody.Value.Content
	var ref *openapi3.SchemaRef
	for _, mediaType := range mediaTypePreference {
		if mt, ok := content[mediaType]; ok {
			ref = mt.Schema
			break
		}
	}
	if ref == nil {
		for _, mt := range content {
			ref = mt.Schema
			break
		}
	}
	if ref == nil || ref.Value == nil {
		return nil, errors.New("request body has no schema")
	}
	if !isObject(ref.Value) {
		return nil, errors.New("request body is not an object schema")
	}
	return ref.Value, nil
}

func groupFromSchema(name string, schema *openapi3.Schema, opts AdapterOptions) (model.GroupDef, error) {
	group := model.GroupDef{
		Name:   name,
		Fields: make([]model.Def, 0, len(schema.Properties)),
	}

	required := make(map[string]bool, len(schema.Required))
	for _, property := range schema.Required {
		required[property] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for property := range schema.Properties {
		names = append(names, property)
	}
	sort.Strings(names)

	for _, property := range names {
		ref := schema.Properties[property]
		if ref == nil || ref.Value == nil {
			return model.GroupDef{}, fmt.Errorf("openapi: property %q has an unresolved schema", property)
		}

		if isObject(ref.Value) {
			nested, err := groupFromSchema(property, ref.Value, opts)
			if err != nil {
				return model.GroupDef{}, err
			}
			group.Fields = append(group.Fields, nested)
			continue
		}

		field, err := fieldFromSchema(property, ref.Value, required[property], opts)
		if err != nil {
			return model.GroupDef{}, err
		}
		group.Fields = append(group.Fields, field)
	}

	return group, nil
}

func fieldFromSchema(name string, schema *openapi3.Schema, required bool, opts AdapterOptions) (model.FieldDef, error) {
	field := model.FieldDef{
		Name:        name,
		Label:       labelFor(name, schema, opts),
		Placeholder: strings.TrimSpace(schema.Description),
		Required:    required,
	}
	if schema.Example != nil {
		field.InitialValue = schema.Example
	} else if schema.Default != nil {
		field.InitialValue = schema.Default
	}

	switch schemaType(schema) {
	case "number", "integer":
		field.Rules = append(field.Rules, model.Numeric)
		if schema.Min != nil {
			field.Rules = append(field.Rules, minimumRule(*schema.Min))
		}
		if schema.Max != nil {
			field.Rules = append(field.Rules, maximumRule(*schema.Max))
		}
	case "string":
		if schema.MinLength > 0 {
			field.Rules = append(field.Rules, minLengthRule(int(schema.MinLength)))
		}
		if schema.MaxLength != nil {
			field.Rules = append(field.Rules, maxLengthRule(int(*schema.MaxLength)))
		}
		if schema.Pattern != "" {
			rule, err := patternRule(schema.Pattern)
			if err != nil {
				return model.FieldDef{}, fmt.Errorf("openapi: field %q: %w", name, err)
			}
			field.Rules = append(field.Rules, rule)
		}
		field.Choices = choicesFromEnum(schema.Enum)
	case "array":
		items := schema.Items
		if items == nil || items.Value == nil {
			break
		}
		if isObject(items.Value) {
			return model.FieldDef{}, fmt.Errorf("openapi: field %q: arrays of objects are not supported", name)
		}
		field.Choices = choicesFromEnum(items.Value.Enum)
		if schema.MinItems >= 1 {
			field.Rules = append(field.Rules, model.AtLeastOne)
		}
	}

	return field, nil
}

func labelFor(name string, schema *openapi3.Schema, opts AdapterOptions) string {
	if title := strings.TrimSpace(schema.Title); title != "" {
		return title
	}
	return opts.Labeler(name)
}

func choicesFromEnum(enum []any) []string {
	if len(enum) == 0 {
		return nil
	}
	choices := make([]string, 0, len(enum))
	for _, value := range enum {
		choices = append(choices, fmt.Sprint(value))
	}
	return choices
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func isObject(schema *openapi3.Schema) bool {
	return schemaType(schema) == "object" || len(schema.Properties) > 0
}
