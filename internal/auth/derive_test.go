package auth

import "testing"

func TestDeriveStudentPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dob  string
		want string
		ok   bool
	}{
		{"09/04/2011", "09042011ok", true},
		{"2011-04-09", "09042011ok", true},
		{"2002-02-19T18:30:00.000Z", "19022002ok", true},
		{"19-02-2002", "19022002ok", true},
		{"", "", false},
		{"unknown", "", false},
		{"99/99/2020", "", false},
	}
	for _, tc := range cases {
		got, ok := DeriveStudentPassword(tc.dob)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("DeriveStudentPassword(%q) = (%q, %v), want (%q, %v)", tc.dob, got, ok, tc.want, tc.ok)
		}
	}
}
