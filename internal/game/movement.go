package game

// MoveResult is the outcome of one trail step.
type MoveResult uint8

const (
	// MoveInert: the trail has no body (a placeholder bot) and did nothing.
	MoveInert MoveResult = iota
	MoveAdvanced
	MoveOutOfBounds
	MoveCollided
)

func (r MoveResult) String() string {
	switch r {
	case MoveAdvanced:
		return "advanced"
	case MoveOutOfBounds:
		return "out-of-bounds"
	case MoveCollided:
		return "collided"
	default:
		return "inert"
	}
}

// Died reports whether the step killed the trail.
func (r MoveResult) Died() bool {
	return r == MoveOutOfBounds || r == MoveCollided
}

// Code is 1 for a successful advance and 0 for everything else.
func (r MoveResult) Code() int {
	if r == MoveAdvanced {
		return 1
	}
	return 0
}

// Step advances t by one cell.
//
// Bots re-roll their pending heading with probability 1/BotTurnChance. A
// pending heading that would reverse the trail is dropped. A dead bot has its
// body cleared from the grid and emptied; replacing it is the caller's job.
// A dead human keeps its body and grid cells. Every successful human advance
// conquers the radius box around the new head.
func Step(t *Trail, g *Grid, rng Source) MoveResult {
	if t.Owner == OwnerBot && rng.Intn(BotTurnChance) == 0 {
		t.Pending = Direction(rng.Intn(4))
	}
	if t.Pending == t.Heading.Opposite() {
		t.Pending = t.Heading
	}
	t.Heading = t.Pending

	last, ok := t.Head()
	if !ok {
		return MoveInert
	}

	head := last.Add(t.Heading.Delta())
	if !InBounds(head) {
		kill(t, g)
		return MoveOutOfBounds
	}
	// Any occupant is fatal, including the trail's own body.
	if g.OccupantAt(head) != OwnerNone {
		kill(t, g)
		return MoveCollided
	}

	t.Body = append(t.Body, head)
	g.SetOccupant(head, t.Owner)
	if t.Owner == OwnerHuman {
		Conquer(g, head)
	}
	return MoveAdvanced
}

func kill(t *Trail, g *Grid) {
	if t.Owner != OwnerBot {
		return
	}
	g.clearBody(t.Body)
	t.Body = t.Body[:0]
}
