package main

import "testing"

func TestIsComplete(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"1 + 2", true},
		{"fmt.Println(1)", true},
		{"func f() {", false},
		{"func f() {\n\treturn\n}", true},
		{"x := []int{1, 2", false},
		{`"unterminated`, false},
		{`"closed"`, true},
		{"`raw", false},
		{"`raw\nstill raw`", true},
		{`"\""`, true},
		{"'\\''", true},
		{"// open paren in comment (", true},
		{"x := 1 // trailing {", true},
		{`s := "{"`, true},
		{"}", true},
		{"((", false},
		{"(())", true},
	}
	for _, tt := range tests {
		if got := isComplete(tt.line); got != tt.want {
			t.Errorf("isComplete(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
