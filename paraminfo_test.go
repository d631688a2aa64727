package paraminfo_test

import (
	"reflect"
	"testing"

	paraminfo "github.com/goliatone/go-paraminfo"
)

func TestParameterTypesOf(t *testing.T) {
	types, err := paraminfo.ParameterTypesOf(func(a int, b string) {})
	if err != nil {
		t.Fatalf("ParameterTypesOf: %v", err)
	}
	if len(types) != 2 || types[0] != reflect.TypeOf(0) || types[1] != reflect.TypeOf("") {
		t.Fatalf("unexpected types %v", types)
	}

	empty, err := paraminfo.ParameterTypesOf(func() {})
	if err != nil {
		t.Fatalf("ParameterTypesOf: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}

	if _, err := paraminfo.ParameterTypesOf(nil); err == nil {
		t.Fatalf("expected error for nil function")
	}
}

func TestToParameterTypes(t *testing.T) {
	params, err := paraminfo.Parameters(func(x float64, ok bool) {}, paraminfo.WithNames("x", "ok"))
	if err != nil {
		t.Fatalf("Parameters: %v", err)
	}
	types := paraminfo.ToParameterTypes(params)
	for i, p := range params {
		if types[i] != p.Type {
			t.Fatalf("index %d: got %v, want %v", i, types[i], p.Type)
		}
	}

	sig, err := paraminfo.Describe("pair", func(x float64, ok bool) {}, paraminfo.WithNames("x", "ok"))
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if got := sig.String(); got != "pair(x float64, ok bool)" {
		t.Fatalf("unexpected signature %q", got)
	}
}
