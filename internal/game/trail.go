package game

// Direction is a trail heading. The order matters: bots pick Direction(rng.Intn(4)).
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step for d. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Trail is the growing body of one human or bot entity.
// Body is tail first; the head is the last element. An empty body is a dead
// or unspawned trail.
type Trail struct {
	Body    []Cell
	Heading Direction
	Pending Direction
	Owner   Owner
}

// NewHumanTrail builds the player trail from InitialBody and marks its cells
// on g. Conquest seeding is separate (SeedConquest).
func NewHumanTrail(g *Grid) *Trail {
	t := &Trail{
		Body:    make([]Cell, 0, 256),
		Heading: Right,
		Pending: Right,
		Owner:   OwnerHuman,
	}
	for _, c := range InitialBody {
		t.Body = append(t.Body, c)
		g.SetOccupant(c, OwnerHuman)
	}
	return t
}

// placeholderBot is the empty bot used when no spawn cell is available.
func placeholderBot() *Trail {
	return &Trail{Heading: Right, Pending: Right, Owner: OwnerBot}
}

func (t *Trail) Alive() bool {
	return len(t.Body) > 0
}

// Head returns the last body cell; ok is false for an empty trail.
func (t *Trail) Head() (c Cell, ok bool) {
	if len(t.Body) == 0 {
		return Cell{}, false
	}
	return t.Body[len(t.Body)-1], true
}

func (t *Trail) Len() int {
	return len(t.Body)
}

// SetIntent records the heading to take on the next step.
func (t *Trail) SetIntent(d Direction) {
	t.Pending = d
}
