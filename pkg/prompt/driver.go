package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputPrompt configures a free text prompt.
type InputPrompt struct {
	Message string
	Default string
	Help    string
}

// ConfirmPrompt configures a yes/no prompt.
type ConfirmPrompt struct {
	Message string
	Default bool
	Help    string
}

// SelectPrompt configures a single-choice prompt.
type SelectPrompt struct {
	Message  string
	Options  []string
	Default  string
	Help     string
	PageSize int
}

// MultiSelectPrompt configures a multi-choice prompt.
type MultiSelectPrompt struct {
	Message  string
	Options  []string
	Defaults []string
	Help     string
	PageSize int
}

// PromptDriver abstracts the terminal implementation so session logic can be
// tested without a real terminal and callers can swap implementations.
type PromptDriver interface {
	Input(cfg InputPrompt) (string, error)
	Confirm(cfg ConfirmPrompt) (bool, error)
	Select(cfg SelectPrompt) (string, error)
	MultiSelect(cfg MultiSelectPrompt) ([]string, error)
	Info(message string) error
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns the survey-backed driver. Informational output
// goes to out.
func NewSurveyDriver(out io.Writer) PromptDriver {
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Input(cfg InputPrompt) (string, error) {
	var out string
	ask := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(ask, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(cfg ConfirmPrompt) (bool, error) {
	var out bool
	ask := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(ask, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(cfg SelectPrompt) (string, error) {
	var out string
	ask := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		ask.PageSize = cfg.PageSize
	}
	if cfg.Default != "" {
		ask.Default = cfg.Default
	}
	if err := survey.AskOne(ask, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) MultiSelect(cfg MultiSelectPrompt) ([]string, error) {
	var out []string
	ask := &survey.MultiSelect{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		ask.PageSize = cfg.PageSize
	}
	if len(cfg.Defaults) > 0 {
		ask.Default = cfg.Defaults
	}
	if err := survey.AskOne(ask, &out); err != nil {
		return nil, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(message string) error {
	_, err := fmt.Fprintln(d.out, message)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
