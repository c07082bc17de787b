package prompt

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantMsg string
	}{
		{"empty", "", false, "Please enter something."},
		{"whitespace only", "   ", false, "Please enter something."},
		{"tabs and newlines", "\t\n ", false, "Please enter something."},
		{"normal prompt", "Write a haiku about the ocean.", true, ""},
		{"at limit", strings.Repeat("a", 2000), true, ""},
		{"over limit", strings.Repeat("a", 2001), false, "That's too long. Keep it under 2000 characters."},
		{"multi-byte under limit", strings.Repeat("é", 1500), true, ""},
		{"multi-byte at limit", strings.Repeat("é", 2000), true, ""},
		{"multi-byte over limit", strings.Repeat("é", 2001), false, "That's too long. Keep it under 2000 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := Validate(tt.input)
			if ok != tt.wantOK {
				t.Errorf("Validate() ok = %v, want %v", ok, tt.wantOK)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateDoesNotTrim(t *testing.T) {
	// Prompts with surrounding whitespace but real content are accepted
	// as-is; Validate never transforms its input.
	ok, msg := Validate("  hello  ")
	if !ok || msg != "" {
		t.Errorf("Validate(%q) = (%v, %q), want (true, \"\")", "  hello  ", ok, msg)
	}
}

func TestExampleByToken(t *testing.T) {
	tests := []struct {
		token  string
		want   string
		wantOK bool
	}{
		{"1", Examples[0], true},
		{"5", Examples[4], true},
		{"0", "", false},
		{"6", "", false},
		{"-1", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ExampleByToken(tt.token)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExampleByToken(%q) = (%q, %v), want (%q, %v)", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExamplesCount(t *testing.T) {
	if len(Examples) != 5 {
		t.Errorf("expected 5 example prompts, got %d", len(Examples))
	}
}
