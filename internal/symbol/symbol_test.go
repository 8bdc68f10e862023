package symbol

import "testing"

func TestIs(t *testing.T) {
	for _, r := range "09azAZ" {
		if !Is(r) {
			t.Fatalf("%q should be a symbol", r)
		}
	}
	for _, r := range "+,*()# _\té" {
		if Is(r) {
			t.Fatalf("%q should not be a symbol", r)
		}
	}
}

func TestIsString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"7", true},
		{"", false},
		{"ab", false},
		{"+", false},
		{"é", false},
	}
	for _, tt := range tests {
		if got := IsString(tt.in); got != tt.want {
			t.Errorf("IsString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
