package formmodel

import (
	"context"

	internalLoader "github.com/kaid/stupid-form-model/internal/definition/loader"
	pkgdefinition "github.com/kaid/stupid-form-model/pkg/definition"
)

// NewDefinitionLoader constructs a loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewDefinitionLoader(options ...pkgdefinition.LoaderOption) pkgdefinition.Loader {
	cfg := pkgdefinition.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// ParseDefinition decodes a loaded document into a Definition.
func ParseDefinition(doc pkgdefinition.Document, options ...pkgdefinition.ParseOption) (Definition, error) {
	return pkgdefinition.Parse(doc, options...)
}

// LoadDefinition fetches the document behind src and parses it in one
// step. The options configure the loader; parsing runs with the builtin
// rule registry.
func LoadDefinition(ctx context.Context, src pkgdefinition.Source, options ...pkgdefinition.LoaderOption) (Definition, error) {
	loader := NewDefinitionLoader(options...)
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return Definition{}, err
	}
	return pkgdefinition.Parse(doc)
}
