package game

// Conquer claims the radius box around a freshly placed human cell and
// refreshes the unconquered list.
func Conquer(g *Grid, head Cell) {
	g.ConquerRadius(head, ConqueringRadius)
	g.RebuildUnconquered()
}

// SeedConquest runs Conquer for every cell of an initial human body.
func SeedConquest(g *Grid, body []Cell) {
	for _, c := range body {
		Conquer(g, c)
	}
}

// NewBoard creates a grid and the human trail on it, with the grid's
// conquest seeded from the initial body.
func NewBoard() (*Grid, *Trail) {
	g := NewGrid()
	human := NewHumanTrail(g)
	SeedConquest(g, human.Body)
	return g, human
}
