package models

import "testing"

func TestNormalizeDOB(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"2002-02-19T18:30:00.000Z", "19/02/2002"},
		{"2011-04-09", "09/04/2011"},
		{"19/02/2002", "19/02/2002"},
		{"9/4/2011", "09/04/2011"},
		{"19-02-2002", "19/02/2002"},
		{"9-4-2011", "09/04/2011"},
		{"  2011-04-09  ", "09/04/2011"},
		{"", ""},
		{"not a date", "not a date"},
		{"2020-99-99", "2020-99-99"},
		{"99/99/2020", "99/99/2020"},
		{"19.02.2002", "19.02.2002"},
	}
	for _, tc := range cases {
		if got := NormalizeDOB(tc.input); got != tc.want {
			t.Fatalf("NormalizeDOB(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeDOBIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"2011-04-09", "19/02/2002", "garbage", "2002-02-19T18:30:00.000Z"} {
		once := NormalizeDOB(input)
		twice := NormalizeDOB(once)
		if once != twice {
			t.Fatalf("NormalizeDOB not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
