package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{" a ", false},
	}
	for _, tt := range tests {
		if got := IsEmpty(tt.input); got != tt.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"john@company.com", true},
		{"a.b+c@sub.domain.io", true},
		{"missing-at.com", false},
		{"no-domain@", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.input); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2025-01-31", true},
		{"2025-02-30", false},
		{"31-01-2025", false},
		{"not-a-date", false},
	}
	for _, tt := range tests {
		if _, ok := IsValidDate(tt.input); ok != tt.want {
			t.Errorf("IsValidDate(%q) ok = %v, want %v", tt.input, ok, tt.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"sick", "casual", "annual"}
	if !IsInSlice("sick", slice) {
		t.Error("expected sick to be in slice")
	}
	if IsInSlice("unpaid", slice) {
		t.Error("expected unpaid not to be in slice")
	}
}
