package middleware

import (
	"strings"
	"testing"
)

func TestValidateVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid short", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"valid with dash", "abc-def_123", "abc-def_123", false},
		{"trims whitespace", "  abc  ", "abc", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", 33), "", true},
		{"exactly 32", strings.Repeat("a", 32), strings.Repeat("a", 32), false},
		{"invalid chars", "abc def", "", true},
		{"sql injection", "a'; DROP--", "", true},
		{"unicode", "abcédef", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateVideoID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestValidateChannelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "UCuAXFkgsw1L7xaCfnd5JJOw", "UCuAXFkgsw1L7xaCfnd5JJOw", false},
		{"empty", "", "", true},
		{"too long 65", strings.Repeat("1", 65), "", true},
		{"exactly 64", strings.Repeat("1", 64), strings.Repeat("1", 64), false},
		{"invalid chars", "UC test!", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChannelID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateRadius(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty allowed", "", "", false},
		{"kilometers", "50km", "50km", false},
		{"meters", "1500m", "1500m", false},
		{"decimal miles", "0.75mi", "0.75mi", false},
		{"feet", "19000ft", "19000ft", false},
		{"no unit", "50", "", true},
		{"bad unit", "50cm", "", true},
		{"negative", "-5km", "", true},
		{"trims whitespace", " 10km ", "10km", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateRadius(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "user@example.com", "user@example.com", false},
		{"normalized lowercase", "User@Example.COM", "user@example.com", false},
		{"trims whitespace", " a@b.co ", "a@b.co", false},
		{"empty", "", "", true},
		{"no at", "userexample.com", "", true},
		{"no domain dot", "user@example", "", true},
		{"spaces inside", "us er@example.com", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateEmail(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if msg := ValidatePassword("12345"); msg == "" {
		t.Error("5 chars should be rejected")
	}
	if msg := ValidatePassword("123456"); msg != "" {
		t.Errorf("6 chars should pass: %s", msg)
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "great app", "great app", false},
		{"trims whitespace", "  hi  ", "hi", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"exactly 1000", strings.Repeat("x", 1000), strings.Repeat("x", 1000), false},
		{"too long", strings.Repeat("x", 1001), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateComment(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateUserName(t *testing.T) {
	if got := ValidateUserName("  Maria  "); got != "Maria" {
		t.Errorf("trim failed: got %q", got)
	}
	if got := ValidateUserName(""); got != "Anonymous" {
		t.Errorf("empty name default failed: got %q", got)
	}
	if got := ValidateUserName(strings.Repeat("x", 200)); len(got) != MaxUserNameLen {
		t.Errorf("truncation failed: got len %d, want %d", len(got), MaxUserNameLen)
	}
}
