package core

import "testing"

func TestParseWon(t *testing.T) {
	cases := []struct {
		in  string
		out Won
		ok  bool
	}{
		{"1", 1, true},
		{"12000", 12000, true},
		{"12,000", 12000, true},
		{"₩3,500", 3500, true},
		{"45000원", 45000, true},
		{" 700 ", 700, true},
		{"-1", 0, false},
		{"+5", 0, false},
		{"0", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseWon(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestWonString(t *testing.T) {
	cases := map[Won]string{
		0:        "₩0",
		999:      "₩999",
		12000:    "₩12,000",
		1234567:  "₩1,234,567",
		-3500:    "-₩3,500",
	}
	for in, want := range cases {
		if got := in.String(); got != want {
			t.Errorf("Won(%d).String() = %q, want %q", int64(in), got, want)
		}
	}
}
