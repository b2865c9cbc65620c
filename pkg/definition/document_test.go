package definition_test

import (
	"testing"

	"github.com/kaid/stupid-form-model/pkg/definition"
)

func TestNewDocument_Validation(t *testing.T) {
	if _, err := definition.NewDocument(nil, []byte("fields: []")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := definition.NewDocument(definition.SourceFromFS("a.yaml"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDocument_RawIsACopy(t *testing.T) {
	payload := []byte("fields: []")
	doc := definition.MustNewDocument(definition.SourceFromFS("a.yaml"), payload)

	payload[0] = 'X'
	if got := doc.Raw(); string(got) != "fields: []" {
		t.Fatalf("document shares caller slice: %q", got)
	}

	raw := doc.Raw()
	raw[0] = 'X'
	if got := doc.Raw(); string(got) != "fields: []" {
		t.Fatalf("Raw returns shared slice: %q", got)
	}
}

func TestSources(t *testing.T) {
	file := definition.SourceFromFile("./forms/../forms/reg.yaml")
	if file.Kind() != definition.SourceKindFile {
		t.Fatalf("unexpected kind %q", file.Kind())
	}
	if file.Location() != "forms/reg.yaml" {
		t.Fatalf("expected cleaned path, got %q", file.Location())
	}

	fsSrc := definition.SourceFromFS("forms/reg.yaml")
	if fsSrc.Kind() != definition.SourceKindFS {
		t.Fatalf("unexpected kind %q", fsSrc.Kind())
	}

	urlSrc := definition.SourceFromURL("https://example.com/reg.yaml")
	if urlSrc.Kind() != definition.SourceKindURL {
		t.Fatalf("unexpected kind %q", urlSrc.Kind())
	}
	if urlSrc.Location() != "https://example.com/reg.yaml" {
		t.Fatalf("unexpected location %q", urlSrc.Location())
	}
}

func TestSourceFromURL_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid URL")
		}
	}()
	definition.SourceFromURL("://not-a-url")
}
