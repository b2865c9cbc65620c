package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// MustLoadRejections loads a JSON golden file holding a dotted-path
// rejection map, the shape produced by model.Result.Flatten.
func MustLoadRejections(t *testing.T, path string) map[string][]string {
	t.Helper()

	out, err := LoadRejections(path)
	if err != nil {
		t.Fatalf("load rejections: %v", err)
	}
	return out
}

// LoadRejections reads a rejection-map fixture without requiring a
// testing.T, for callers wiring fixtures in setup code.
func LoadRejections(path string) (map[string][]string, error) {
	if path == "" {
		return nil, errors.New("testsupport: rejections path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read rejections: %w", err)
	}
	var out map[string][]string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal rejections: %w", err)
	}
	return out, nil
}

// WriteRejections writes a rejection-map golden when UPDATE_GOLDENS is
// enabled.
func WriteRejections(t *testing.T, path string, value map[string][]string) {
	t.Helper()
	WriteGolden(t, path, value)
}

// WriteGolden writes arbitrary data as indented JSON to a golden file when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureRenderOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
// Tests can assert a renderer returns and writes the same payload without
// duplicating buffer setup.
func CaptureRenderOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	return out, buf.String()
}
