package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kaid/stupid-form-model/pkg/model"
)

type stubDriver struct {
	inputs     []string
	selections []string
	multis     [][]string
	confirms   []bool
	infos      []string
	inputErr   error

	inputPos   int
	selectPos  int
	multiPos   int
	confirmPos int
}

func (s *stubDriver) Input(_ InputPrompt) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ ConfirmPrompt) (bool, error) {
	if s.confirmPos >= len(s.confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ SelectPrompt) (string, error) {
	if s.selectPos >= len(s.selections) {
		return "", errors.New("no select scripted")
	}
	val := s.selections[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ MultiSelectPrompt) ([]string, error) {
	if s.multiPos >= len(s.multis) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multis[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(message string) error {
	s.infos = append(s.infos, message)
	return nil
}

func sessionForm(t *testing.T) *model.Group {
	t.Helper()

	group, err := model.Build(model.GroupDef{
		Name: "signup",
		Fields: []model.Def{
			model.FieldDef{Name: "username", Label: "用户名", Required: true},
			model.FieldDef{Name: "age", Label: "年龄", Rules: []model.Rule{model.Numeric}},
			model.FieldDef{Name: "plan", Label: "套餐", Choices: []string{"free", "pro"}},
			model.FieldDef{
				Name:         "tags",
				Label:        "标签",
				Choices:      []string{"go", "web"},
				InitialValue: []any{},
				Rules:        []model.Rule{model.AtLeastOne},
			},
		},
	})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	return group
}

func TestFill_WalksFieldsInOrder(t *testing.T) {
	driver := &stubDriver{
		inputs:     []string{"kaido", "42"},
		selections: []string{"pro"},
		multis:     [][]string{{"go"}},
	}
	session := NewSession(WithDriver(driver))
	form := sessionForm(t)

	result, err := session.Fill(context.Background(), form)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if !result.OK() {
		t.Fatalf("expected clean result, got %+v", result)
	}

	want := map[string]any{
		"username": "kaido",
		"age":      "42",
		"plan":     "pro",
		"tags":     []string{"go"},
	}
	if diff := cmp.Diff(want, form.Value()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if driver.inputPos != 2 || driver.selectPos != 1 || driver.multiPos != 1 {
		t.Fatal("prompts not consumed as expected")
	}
}

func TestFill_RepromptsOnRejection(t *testing.T) {
	driver := &stubDriver{
		inputs:     []string{"kaido", "abc", "42"},
		selections: []string{"free"},
		multis:     [][]string{{"web"}},
	}
	session := NewSession(WithDriver(driver))
	form := sessionForm(t)

	result, err := session.Fill(context.Background(), form)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if !result.OK() {
		t.Fatalf("expected clean result after re-prompt, got %+v", result)
	}

	age, _ := form.Field("age")
	if got := age.Value(); got != "42" {
		t.Fatalf("expected the re-prompted answer, got %v", got)
	}

	var sawRejection bool
	for _, info := range driver.infos {
		if strings.Contains(info, "age") && strings.Contains(info, model.NumericMessage) {
			sawRejection = true
		}
	}
	if !sawRejection {
		t.Fatalf("expected a rejection message for age, got %v", driver.infos)
	}
}

func TestFill_KeepsLastAnswerWhenAttemptsRunOut(t *testing.T) {
	driver := &stubDriver{
		inputs:     []string{"", "", "1"},
		selections: []string{"free"},
		multis:     [][]string{{"go"}},
	}
	session := NewSession(WithDriver(driver), WithMaxAttempts(2))
	form := sessionForm(t)

	result, err := session.Fill(context.Background(), form)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if result.OK() {
		t.Fatal("expected rejections to survive the attempt limit")
	}

	got := result.Flatten()
	want := map[string][]string{
		"username": {model.RequiredMessage},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infos) != 2 {
		t.Fatalf("expected one info per failed attempt, got %v", driver.infos)
	}
}

func TestFill_AbortStopsTheWalk(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	session := NewSession(WithDriver(driver))
	form := sessionForm(t)

	_, err := session.Fill(context.Background(), form)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestFill_CancelledContext(t *testing.T) {
	driver := &stubDriver{inputs: []string{"kaido"}}
	session := NewSession(WithDriver(driver))
	form := sessionForm(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := session.Fill(ctx, form); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if driver.inputPos != 0 {
		t.Fatal("expected no prompts after cancellation")
	}
}

func TestFill_NilForm(t *testing.T) {
	session := NewSession(WithDriver(&stubDriver{}))
	if _, err := session.Fill(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil form")
	}
}
