package game

// SpawnBot places a one-cell bot heading Right on a random unconquered cell.
// It returns an empty placeholder when the void is exhausted or the picked
// cell is already occupied; the pick is not retried.
func SpawnBot(g *Grid, rng Source) *Trail {
	void := g.Unconquered()
	if len(void) == 0 {
		return placeholderBot()
	}
	c := void[rng.Intn(len(void))]
	if g.OccupantAt(c) != OwnerNone {
		return placeholderBot()
	}
	g.SetOccupant(c, OwnerBot)
	t := placeholderBot()
	t.Body = append(make([]Cell, 0, 16), c)
	return t
}

// SpawnPopulation calls SpawnBot count times.
func SpawnPopulation(g *Grid, rng Source, count int) []*Trail {
	bots := make([]*Trail, 0, count)
	for i := 0; i < count; i++ {
		bots = append(bots, SpawnBot(g, rng))
	}
	return bots
}

// LiveBots counts bots with a non-empty body.
func LiveBots(bots []*Trail) int {
	n := 0
	for _, b := range bots {
		if b.Alive() {
			n++
		}
	}
	return n
}
