package util

import "testing"

func TestTeamOctets(t *testing.T) {
	cases := []struct {
		team   uint16
		te, am int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{254, 2, 54},
		{1234, 12, 34},
		{58, 0, 58},
	}

	for _, c := range cases {
		te, am := TeamOctets(c.team)
		if te != c.te || am != c.am {
			t.Fatalf("TeamOctets(%d) = (%d,%d), want (%d,%d)", c.team, te, am, c.te, c.am)
		}
	}
}
