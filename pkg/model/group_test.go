package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kaid/stupid-form-model/pkg/model"
)

func registrationTree(t *testing.T, options ...model.Option) *model.Group {
	t.Helper()
	group, err := model.Build(model.GroupDef{
		Name: "registration",
		Fields: []model.Def{
			model.FieldDef{Name: "username", Label: "用户名", Required: true},
			model.FieldDef{Name: "age", Label: "年龄", Required: true, Rules: []model.Rule{model.Numeric}},
			model.GroupDef{
				Name: "address",
				Fields: []model.Def{
					model.FieldDef{Name: "city", Label: "城市", Required: true},
					model.FieldDef{Name: "zip", Label: "邮编", InitialValue: "100000", Rules: []model.Rule{model.Numeric}},
				},
			},
			model.FieldDef{Name: "tags", Label: "标签", Choices: []string{"go", "web"}, Rules: []model.Rule{model.AtLeastOne}},
		},
	}, options...)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return group
}

func TestGroup_ValueRoundTrip(t *testing.T) {
	group, err := model.Build(model.GroupDef{Fields: []model.Def{
		model.FieldDef{Name: "a"},
		model.FieldDef{Name: "b"},
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	group.SetValue(map[string]any{"a": 1, "b": "x"})

	want := map[string]any{"a": 1, "b": "x"}
	if diff := cmp.Diff(want, group.Value()); diff != "" {
		t.Fatalf("round-trip (-want +got):\n%s", diff)
	}

	// Every Value call builds a fresh map; scribbling on one snapshot
	// must not show up in the next.
	group.Value().(map[string]any)["a"] = "scribbled"
	if diff := cmp.Diff(want, group.Value()); diff != "" {
		t.Fatalf("snapshot shared between calls (-want +got):\n%s", diff)
	}
}

func TestGroup_SetValueKeyHandling(t *testing.T) {
	group := registrationTree(t)

	group.SetValue(map[string]any{
		"username": "gopher",
		"ghost":    true,
	})

	username, ok := group.Field("username")
	if !ok {
		t.Fatal("username field missing")
	}
	if got := username.Value(); got != "gopher" {
		t.Fatalf("username mismatch: %v", got)
	}

	// Names absent from the incoming map still get written: the child
	// receives nil and flips to touched.
	age, _ := group.Field("age")
	if got := age.Value(); got != nil {
		t.Fatalf("age should have been written nil, got %v", got)
	}
	if !age.Touched() {
		t.Fatal("age must be touched by the nil write")
	}

	if _, ok := group.Child("ghost"); ok {
		t.Fatal("unknown keys must not create children")
	}
}

func TestGroup_SetValueNonMap(t *testing.T) {
	group := registrationTree(t)

	group.SetValue(42)

	username, _ := group.Field("username")
	if got := username.Value(); got != nil {
		t.Fatalf("non-map write should behave like an empty map, got %v", got)
	}
	if !username.Touched() {
		t.Fatal("children must still be marked touched")
	}
}

func TestGroup_ValidAggregation(t *testing.T) {
	group := registrationTree(t)

	// Untouched children all report valid, so the group does too.
	if !group.Valid() {
		t.Fatal("untouched tree must be valid")
	}

	// Touch one child without validating: it reports invalid and drags
	// the group with it.
	username, _ := group.Field("username")
	username.SetValue("gopher")
	if group.Valid() {
		t.Fatal("one invalid child must flip the group")
	}

	// Resetting that child restores its validity and the group's.
	username.Reset()
	if !group.Valid() {
		t.Fatal("resetting the child must restore group validity")
	}
}

func TestGroup_ValidateCollectsByName(t *testing.T) {
	group := registrationTree(t)

	group.SetValue(map[string]any{
		"username": "",
		"age":      "abc",
		"address":  map[string]any{"zip": "12abc"},
		"tags":     []string{},
	})

	result := group.Validate()

	want := model.Result{Children: map[string]model.Result{
		"username": {Messages: []string{model.RequiredMessage}},
		"age":      {Messages: []string{model.NumericMessage}},
		"address": {Children: map[string]model.Result{
			"city": {Messages: []string{model.RequiredMessage}},
			"zip":  {Messages: []string{model.NumericMessage}},
		}},
		"tags": {Messages: []string{model.AtLeastOneMessage}},
	}}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("validate result (-want +got):\n%s", diff)
	}

	if result.OK() {
		t.Fatal("result with rejections must not report OK")
	}

	wantFlat := map[string][]string{
		"username":     {model.RequiredMessage},
		"age":          {model.NumericMessage},
		"address.city": {model.RequiredMessage},
		"address.zip":  {model.NumericMessage},
		"tags":         {model.AtLeastOneMessage},
	}
	if diff := cmp.Diff(wantFlat, result.Flatten()); diff != "" {
		t.Fatalf("flattened result (-want +got):\n%s", diff)
	}
}

func TestGroup_ResetFansOut(t *testing.T) {
	group := registrationTree(t)

	group.SetValue(map[string]any{
		"username": "gopher",
		"address":  map[string]any{"zip": "200000"},
	})
	group.Validate()
	group.Reset()

	// city went through validate with a nil value, so it carries the
	// required rejection into the reset.
	city, _ := group.Field("address.city")
	if city.Touched() {
		t.Fatal("reset must clear touched on nested leaves")
	}
	if got := city.Rejections(); len(got) == 0 {
		t.Fatal("reset must keep rejections until the next validate")
	}

	zip, _ := group.Field("address.zip")
	if got := zip.Value(); got != "100000" {
		t.Fatalf("reset must restore the initial value, got %v", got)
	}
	if zip.Touched() {
		t.Fatal("reset must clear touched on nested leaves")
	}
}

func TestGroup_WalkAndLookup(t *testing.T) {
	group := registrationTree(t)

	var paths []string
	err := group.Walk(func(path string, _ model.Node) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []string{"username", "age", "address", "address.city", "address.zip", "tags"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("walk order (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	var before []string
	err = group.Walk(func(path string, _ model.Node) error {
		if path == "address.city" {
			return stop
		}
		before = append(before, path)
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("walk must surface the callback error, got %v", err)
	}
	if diff := cmp.Diff([]string{"username", "age", "address"}, before); diff != "" {
		t.Fatalf("walk must stop at the error (-want +got):\n%s", diff)
	}

	if node, ok := group.Lookup("address.city"); !ok {
		t.Fatal("lookup address.city failed")
	} else if _, isField := node.(*model.Field); !isField {
		t.Fatalf("expected a leaf at address.city, got %T", node)
	}

	if node, ok := group.Lookup("address"); !ok {
		t.Fatal("lookup address failed")
	} else if _, isGroup := node.(*model.Group); !isGroup {
		t.Fatalf("expected a group at address, got %T", node)
	}

	if _, ok := group.Lookup("address.street"); ok {
		t.Fatal("lookup of a missing path must fail")
	}
	if _, ok := group.Field("address"); ok {
		t.Fatal("Field must reject non-leaf paths")
	}
	if _, ok := group.Lookup("username.anything"); ok {
		t.Fatal("leaves have no nested paths")
	}
}
