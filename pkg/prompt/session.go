// Package prompt fills definition trees from an interactive terminal
// session. A Session walks the fields in insertion order, asks through a
// PromptDriver, writes every answer into the tree verbatim, and re-asks
// fields whose rules reject the answer.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kaid/stupid-form-model/pkg/model"
)

const defaultMaxAttempts = 3

// Session drives one interactive fill over a tree.
type Session struct {
	driver      PromptDriver
	log         *slog.Logger
	maxAttempts int
	out         io.Writer
}

// NewSession constructs a Session with defaults: the survey driver, three
// attempts per field, output on stdout, and a discarded log.
func NewSession(options ...SessionOption) *Session {
	s := &Session{
		maxAttempts: defaultMaxAttempts,
		out:         os.Stdout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s
}

// Fill prompts for every field of the tree in insertion order. Each answer
// is written through SetValue and validated; rejected fields are asked
// again up to the attempt limit, with the rejection messages shown between
// attempts. Fields that still reject when the limit is reached keep their
// last answer. The returned Result is a full tree Validate taken after the
// walk, so it reflects prompted and exhausted fields alike.
func (s *Session) Fill(ctx context.Context, form *model.Group) (model.Result, error) {
	if form == nil {
		return model.Result{}, errors.New("prompt: form is required")
	}

	err := form.Walk(func(path string, node model.Node) error {
		field, ok := node.(*model.Field)
		if !ok {
			return nil
		}
		return s.fillField(ctx, path, field)
	})
	if err != nil {
		return model.Result{}, err
	}

	result := form.Validate()
	s.log.Debug("prompt session finished",
		slog.String("form", form.Name()),
		slog.Bool("ok", result.OK()),
	)
	return result, nil
}

func (s *Session) fillField(ctx context.Context, path string, field *model.Field) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := s.ask(path, field)
		if err != nil {
			return err
		}

		field.SetValue(answer)
		result := field.Validate()
		if len(result.Messages) == 0 {
			return nil
		}

		s.log.Debug("field rejected",
			slog.String("path", path),
			slog.Int("attempt", attempt),
			slog.Any("messages", result.Messages),
		)
		for _, message := range result.Messages {
			if err := s.driver.Info(fmt.Sprintf("%s: %s", path, message)); err != nil {
				return err
			}
		}
		if attempt >= s.maxAttempts {
			return nil
		}
	}
}

func (s *Session) ask(path string, field *model.Field) (any, error) {
	message := field.Label()
	if message == "" {
		message = path
	}

	choices := field.Choices()
	if len(choices) > 0 {
		if isCollection(field.Value()) {
			return s.driver.MultiSelect(MultiSelectPrompt{
				Message:  message,
				Options:  choices,
				Defaults: stringSlice(field.Value()),
				Help:     field.Placeholder(),
			})
		}
		return s.driver.Select(SelectPrompt{
			Message: message,
			Options: choices,
			Default: stringValue(field.Value()),
			Help:    field.Placeholder(),
		})
	}

	return s.driver.Input(InputPrompt{
		Message: message,
		Default: stringValue(field.Value()),
		Help:    field.Placeholder(),
	})
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	}
	return nil
}

func isCollection(value any) bool {
	switch value.(type) {
	case []any, []string:
		return true
	}
	return false
}
