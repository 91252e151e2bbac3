package board

import "testing"

func TestCellRender(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want string
	}{
		{"covered", Cell{}, CoveredToken},
		{"covered hazard", Cell{hazard: true, adjacent: 3}, CoveredToken},
		{"revealed hazard", Cell{hazard: true, revealed: true, adjacent: 2}, HazardToken},
		{"revealed empty", Cell{revealed: true}, EmptyToken},
		{"revealed one", Cell{revealed: true, adjacent: 1}, "1"},
		{"revealed eight", Cell{revealed: true, adjacent: 8}, "8"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Render(); got != tc.want {
				t.Fatalf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCellRevealIsIdempotent(t *testing.T) {
	c := Cell{adjacent: 2}
	c.Reveal()
	c.Reveal()
	if !c.IsRevealed() {
		t.Fatalf("cell not revealed")
	}
	if c.IsHazard() || c.AdjacentHazards() != 2 {
		t.Fatalf("reveal changed cell content: %+v", c)
	}
	if got := c.Render(); got != "2" {
		t.Fatalf("Render() = %q, want %q", got, "2")
	}
}
