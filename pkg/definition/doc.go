// Package definition loads declarative form definitions from YAML or JSON
// documents and turns them into model definition trees. Sources identify
// where a document lives (file, fs.FS entry, URL), a Loader fetches it
// into a Document, and Parse decodes it against a rule Registry into a
// Definition carrying the model.GroupDef ready for model.Build. Loader
// implementations live under internal/definition to keep transport
// concerns out of the public surface; construction helpers sit in the
// top-level formmodel package. Display metadata (titles, labels,
// placeholders) is sanitized at this boundary so downstream consumers
// never see embedded markup.
package definition
