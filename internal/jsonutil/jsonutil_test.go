package jsonutil

import "testing"

func TestGetString(t *testing.T) {
	m := map[string]interface{}{
		"name":  "Terry v. Ohio",
		"count": 3.0,
	}
	if got := GetString(m, "name"); got != "Terry v. Ohio" {
		t.Errorf("GetString(name) = %q", got)
	}
	if got := GetString(m, "count"); got != "" {
		t.Errorf("GetString(count) = %q, want empty for non-string", got)
	}
	if got := GetString(m, "missing"); got != "" {
		t.Errorf("GetString(missing) = %q, want empty", got)
	}
}

func TestFirstString(t *testing.T) {
	m := map[string]interface{}{
		"case_name": "Mapp v. Ohio",
		"caseName":  "ignored",
		"empty":     "",
		"id":        107216.0,
	}

	if got := FirstString(m, "Case Name", "case_name", "caseName"); got != "Mapp v. Ohio" {
		t.Errorf("FirstString = %q, want first non-empty match", got)
	}
	if got := FirstString(m, "empty", "case_name"); got != "Mapp v. Ohio" {
		t.Errorf("FirstString = %q, want empty values skipped", got)
	}
	if got := FirstString(m, "link", "id"); got != "107216" {
		t.Errorf("FirstString = %q, want stringified numeric", got)
	}
	if got := FirstString(m, "nope", "missing"); got != "" {
		t.Errorf("FirstString = %q, want empty when nothing matches", got)
	}
}

func TestGetArray(t *testing.T) {
	m := map[string]interface{}{
		"results": []interface{}{"a", "b"},
		"scalar":  "x",
	}
	if got := GetArray(m, "results"); len(got) != 2 {
		t.Errorf("GetArray(results) len = %d", len(got))
	}
	if got := GetArray(m, "scalar"); got != nil {
		t.Errorf("GetArray(scalar) = %v, want nil", got)
	}
	if got := GetArray(m, "missing"); got != nil {
		t.Errorf("GetArray(missing) = %v, want nil", got)
	}
}

func TestToString(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{"s", "s"},
		{3.0, "3"},
		{3.5, "3.5"},
		{true, "true"},
		{nil, ""},
		{map[string]interface{}{"a": 1}, ""},
		{[]interface{}{1}, ""},
	}
	for _, c := range cases {
		if got := ToString(c.in); got != c.want {
			t.Errorf("ToString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnmarshalWithContext(t *testing.T) {
	var m map[string]interface{}
	if err := UnmarshalWithContext([]byte(`{"ok":true}`), &m, "test payload"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := UnmarshalWithContext([]byte(`nope`), &m, "test payload")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
