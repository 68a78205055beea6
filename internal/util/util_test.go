package util

import "testing"

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "   ", want: ""},
		{input: "sharma@school.edu", want: "sh...a@school.edu"},
		{input: "amit@school.edu", want: "a...@school.edu"},
		{input: "a@school.edu", want: "...@school.edu"},
		{input: "no-at-sign", want: "no...n"},
		{input: "@school.edu", want: "@s...u"},
		{input: "  root@x.y  ", want: "r...@x.y"},
	}
	for _, tc := range cases {
		if got := MaskEmail(tc.input); got != tc.want {
			t.Fatalf("MaskEmail(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
