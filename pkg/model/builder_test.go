package model_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kaid/stupid-form-model/pkg/model"
	"github.com/kaid/stupid-form-model/pkg/testsupport"
)

func TestBuild_PreservesDefinitionOrder(t *testing.T) {
	group := registrationTree(t)

	want := []string{"username", "age", "address", "tags"}
	if diff := cmp.Diff(want, group.Names()); diff != "" {
		t.Fatalf("child order (-want +got):\n%s", diff)
	}

	address, ok := group.Child("address")
	if !ok {
		t.Fatal("address group missing")
	}
	nested, ok := address.(*model.Group)
	if !ok {
		t.Fatalf("expected nested group, got %T", address)
	}
	if diff := cmp.Diff([]string{"city", "zip"}, nested.Names()); diff != "" {
		t.Fatalf("nested order (-want +got):\n%s", diff)
	}
}

func TestBuild_FieldMetadataPassThrough(t *testing.T) {
	group := registrationTree(t)

	username, ok := group.Field("username")
	if !ok {
		t.Fatal("username field missing")
	}
	if got := username.Label(); got != "用户名" {
		t.Fatalf("label mismatch: %q", got)
	}
	if !username.Required() {
		t.Fatal("username must be required")
	}

	tags, _ := group.Field("tags")
	if diff := cmp.Diff([]string{"go", "web"}, tags.Choices()); diff != "" {
		t.Fatalf("choices (-want +got):\n%s", diff)
	}
}

func TestBuild_OptionsReachEveryNode(t *testing.T) {
	group, err := model.Build(model.GroupDef{
		Fields: []model.Def{
			model.GroupDef{
				Name: "outer",
				Fields: []model.Def{
					model.GroupDef{
						Name: "inner",
						Fields: []model.Def{
							model.FieldDef{Name: "leaf", Required: true, Rules: []model.Rule{rejectWith("A"), rejectWith("B")}},
						},
					},
				},
			},
		},
	}, model.WithValidateAllRules(true))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	leaf, ok := group.Field("outer.inner.leaf")
	if !ok {
		t.Fatal("leaf missing at depth two")
	}
	leaf.SetValue(nil)

	want := []string{"A", "B", model.RequiredMessage}
	if diff := cmp.Diff(want, leaf.Validate().Messages); diff != "" {
		t.Fatalf("exhaustive evaluation must reach nested leaves (-want +got):\n%s", diff)
	}
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name    string
		def     model.GroupDef
		wantErr string
	}{
		{
			"duplicate field name",
			model.GroupDef{Fields: []model.Def{
				model.FieldDef{Name: "a"},
				model.FieldDef{Name: "a"},
			}},
			`duplicate field name "a"`,
		},
		{
			"group colliding with field",
			model.GroupDef{Fields: []model.Def{
				model.FieldDef{Name: "a"},
				model.GroupDef{Name: "a"},
			}},
			`duplicate field name "a"`,
		},
		{
			"unnamed field",
			model.GroupDef{Name: "root", Fields: []model.Def{model.FieldDef{}}},
			"unnamed entry",
		},
		{
			"unnamed nested group",
			model.GroupDef{Name: "root", Fields: []model.Def{model.GroupDef{}}},
			"unnamed entry",
		},
		{
			"nil entry",
			model.GroupDef{Name: "root", Fields: []model.Def{nil}},
			"nil entry",
		},
		{
			"nested failure propagates",
			model.GroupDef{Fields: []model.Def{
				model.GroupDef{Name: "outer", Fields: []model.Def{model.FieldDef{}}},
			}},
			`"outer" contains an unnamed entry`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.Build(tc.def)
			if err == nil {
				t.Fatal("expected a build error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestBuild_NumericRequiredFlow(t *testing.T) {
	form := model.MustBuild(model.GroupDef{Fields: []model.Def{
		model.FieldDef{Name: "age", Required: true, Rules: []model.Rule{model.Numeric}},
	}})

	age, ok := form.Field("age")
	if !ok {
		t.Fatal("age field missing")
	}

	age.SetValue("abc")
	if diff := cmp.Diff([]string{model.NumericMessage}, age.Validate().Messages); diff != "" {
		t.Fatalf("non-numeric value (-want +got):\n%s", diff)
	}

	// Numeric accepts nil (it coerces to zero), so only the trailing
	// required rule fires.
	age.SetValue(nil)
	if diff := cmp.Diff([]string{model.RequiredMessage}, age.Validate().Messages); diff != "" {
		t.Fatalf("nil value (-want +got):\n%s", diff)
	}
}

func TestBuild_RejectionsSnapshot(t *testing.T) {
	group := registrationTree(t)
	group.SetValue(map[string]any{
		"age":  "abc",
		"tags": []string{},
	})

	got := group.Validate().Flatten()

	goldenPath := filepath.Join("testdata", "registration_rejections.golden.json")
	testsupport.WriteRejections(t, goldenPath, got)
	want := testsupport.MustLoadRejections(t, goldenPath)

	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("rejections snapshot (-want +got):\n%s", diff)
	}
}
