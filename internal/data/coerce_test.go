package data

import (
	"encoding/json"
	"testing"
)

func TestToInt(t *testing.T) {
	ok := map[string]struct {
		in   any
		want int
	}{
		"integer":       {json.Number("7"), 7},
		"integral":      {json.Number("3.0"), 3},
		"truncates":     {json.Number("-2.7"), -2},
		"string":        {" 12 ", 12},
		"signed string": {"+4", 4},
		"true":          {true, 1},
		"false":         {false, 0},
	}
	for name, c := range ok {
		got, err := toInt(c.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if got != c.want {
			t.Fatalf("%s: expected %d, got %d", name, c.want, got)
		}
	}

	for name, in := range map[string]any{
		"fraction string": "3.5",
		"empty string":    "",
		"list":            []any{json.Number("1")},
		"object":          map[string]any{},
		"huge":            json.Number("1e300"),
	} {
		if _, err := toInt(in); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestOptionalInt_NullIsAbsent(t *testing.T) {
	_, ok, err := optionalInt(map[string]any{"attack": nil}, "attack")
	if err != nil || ok {
		t.Fatalf("expected null to be absent, got ok=%v err=%v", ok, err)
	}
}
