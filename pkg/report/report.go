// Package report snapshots a tree and one validation outcome into a
// serializable report, rendered as text through a pongo2 template or as
// indented JSON. It only reads from the tree.
package report

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/kaid/stupid-form-model/pkg/model"
)

// FieldReport is the per-field slice of a Report.
type FieldReport struct {
	Path     string   `json:"path"`
	Label    string   `json:"label,omitempty"`
	Value    any      `json:"value,omitempty"`
	Messages []string `json:"messages,omitempty"`
	OK       bool     `json:"ok"`
}

// Report is a flat snapshot of a tree and its validation outcome.
type Report struct {
	Title  string        `json:"title,omitempty"`
	OK     bool          `json:"ok"`
	Fields []FieldReport `json:"fields"`
}

// New walks the tree in insertion order and pairs every field with the
// messages the result recorded for its path. Fields without a label fall
// back to their dotted path.
func New(title string, form *model.Group, result model.Result) *Report {
	report := &Report{Title: title, OK: result.OK()}
	if form == nil {
		return report
	}

	rejections := result.Flatten()
	_ = form.Walk(func(path string, node model.Node) error {
		field, ok := node.(*model.Field)
		if !ok {
			return nil
		}

		label := field.Label()
		if label == "" {
			label = path
		}
		messages := append([]string(nil), rejections[path]...)
		report.Fields = append(report.Fields, FieldReport{
			Path:     path,
			Label:    label,
			Value:    field.Value(),
			Messages: messages,
			OK:       len(messages) == 0,
		})
		return nil
	})
	return report
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// RenderText renders the report through the engine's report template.
// Optional writers receive the rendered output too.
func (r *Report) RenderText(engine *Engine, out ...io.Writer) (string, error) {
	if engine == nil {
		return "", errors.New("report: engine is required")
	}
	return engine.RenderTemplate(DefaultTemplate, r, out...)
}
