package classify

import "testing"

func TestDefault_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"upper", "ERROR: x", true},
		{"mixed", "an Error occurred", true},
		{"lower", "error", true},
		{"embedded", "pre-errors detected", true},
		{"clean", "all good", false},
		{"empty", "", false},
	}

	m := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.line); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSubstring_CustomPattern(t *testing.T) {
	m := Substring("FATAL")
	if !m.Match("fatal: disk gone") {
		t.Error("Match should ignore case for custom patterns")
	}
	if m.Match("error: disk gone") {
		t.Error("custom pattern should not match the default keyword")
	}
}

func TestRegexp(t *testing.T) {
	m, err := Regexp(`err(or)?\b`)
	if err != nil {
		t.Fatalf("Regexp returned error: %v", err)
	}
	if !m.Match("ERR something broke") {
		t.Error("regexp matcher should be case-insensitive")
	}
	if m.Match("terrace view") {
		t.Error("regexp matcher should respect the word boundary")
	}

	if _, err := Regexp("("); err == nil {
		t.Error("Regexp should reject invalid patterns")
	}
}
