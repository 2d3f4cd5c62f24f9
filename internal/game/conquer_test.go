package game

import "testing"

func TestSeedConquest_SingleCell(t *testing.T) {
	g := NewGrid()
	SeedConquest(g, []Cell{{X: 20, Y: 20}})

	if got := g.ConqueredCount(); got != 1600 {
		t.Fatalf("conquered = %d, want 1600\n%s", got, dumpRegion(g, 0, 0, 50, 45))
	}
	if got := len(g.Unconquered()); got != GridCells-1600 {
		t.Fatalf("void = %d, want %d", got, GridCells-1600)
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if !g.IsConquered(Cell{X: x, Y: y}) {
				t.Fatalf("cell (%d,%d) not conquered", x, y)
			}
		}
	}
	if g.IsConquered(Cell{X: 40, Y: 20}) || g.IsConquered(Cell{X: 20, Y: 40}) {
		t.Fatal("conquest leaked past the exclusive upper bound")
	}
}

func TestNewBoard_SeedsInitialBody(t *testing.T) {
	g, human := NewBoard()

	if human.Owner != OwnerHuman || human.Heading != Right || human.Pending != Right {
		t.Fatalf("human = %+v", human)
	}
	if human.Len() != len(InitialBody) {
		t.Fatalf("body len = %d", human.Len())
	}
	for _, c := range InitialBody {
		if g.OccupantAt(c) != OwnerHuman {
			t.Fatalf("initial cell %v not occupied by human", c)
		}
	}
	// Union of the boxes around (20..23, 20): x in [0,43), y in [0,40).
	if got := g.ConqueredCount(); got != 43*40 {
		t.Fatalf("conquered = %d, want %d\n%s", got, 43*40, dumpRegion(g, 0, 0, 50, 45))
	}
	if head, _ := human.Head(); head != (Cell{X: 23, Y: 20}) {
		t.Fatalf("head = %v", head)
	}
}

func TestConquer_RefreshesVoid(t *testing.T) {
	g := NewGrid()
	Conquer(g, Cell{X: 160, Y: 90})
	if len(g.Unconquered())+g.ConqueredCount() != GridCells {
		t.Fatal("void list out of sync after Conquer")
	}
	if g.ConqueredCount() != 4*ConqueringRadius*ConqueringRadius {
		t.Fatalf("conquered = %d", g.ConqueredCount())
	}
}
