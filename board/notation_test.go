package board

import (
	"errors"
	"testing"
)

func TestRowLabel(t *testing.T) {
	cases := map[int]string{
		-1: "", 0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA",
	}
	for row, want := range cases {
		if got := RowLabel(row); got != want {
			t.Fatalf("RowLabel(%d) = %q, want %q", row, got, want)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	cases := []struct {
		in   string
		want Position
	}{
		{"A1", Position{Row: 0, Col: 0}},
		{"b3", Position{Row: 1, Col: 2}},
		{"  C10 ", Position{Row: 2, Col: 9}},
		{"Z26", Position{Row: 25, Col: 25}},
		{"aa2", Position{Row: 26, Col: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCoordinate(tc.in)
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseCoordinate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCoordinateRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "A", "1", "A0", "1A", "A-1", "A+1", "A1B", "A 1", "quit", "É1", "GKGWBYLWRXTLPQ1", "ZZZZZZZZZZZZZZZZZZZZ1"} {
		if _, err := ParseCoordinate(in); !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("ParseCoordinate(%q) err = %v, want %v", in, err, ErrInvalidCoordinate)
		}
	}
}

func TestParseCoordinateRoundTripsRowLabel(t *testing.T) {
	for row := 0; row < 800; row += 13 {
		p, err := ParseCoordinate(RowLabel(row) + "4")
		if err != nil {
			t.Fatalf("ParseCoordinate failed for row %d: %v", row, err)
		}
		if p.Row != row || p.Col != 3 {
			t.Fatalf("row %d parsed as %v", row, p)
		}
	}
}
