package core

import "testing"

func TestLeadingFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2458765.500000000 = A.D.", 2458765.5},
		{" 1.000000000000000E+00 Y =", 1},
		{"-2.5E-03trailing", -2.5e-3},
		{".500000000 = A.D.", 0.5},
		{"  +42", 42},
		{"1e", 1},
		{"1E+", 1},
		{"abc", 0},
		{"", 0},
		{"   ", 0},
		{"-", 0},
		{".", 0},
	}
	for _, tc := range cases {
		if got := leadingFloat(tc.in); got != tc.want {
			t.Fatalf("leadingFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"-139479)     {source", -139479},
		{"2458765.500000000", 2458765},
		{"  42abc", 42},
		{"+7", 7},
		{"x1", 0},
		{"-", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := leadingInt(tc.in); got != tc.want {
			t.Fatalf("leadingInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestColumn(t *testing.T) {
	if got := column("abcdef", 2); got != "cdef" {
		t.Fatalf("column = %q, want cdef", got)
	}
	if got := column("abc", 3); got != "" {
		t.Fatalf("column past end = %q, want empty", got)
	}
	if got := column("abc", -1); got != "" {
		t.Fatalf("column negative = %q, want empty", got)
	}
}
