package game

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// fixedSource always returns v, clamped to n-1. With v >= 1 bots never churn
// their heading and every spawn picks the same void index.
type fixedSource struct{ v int }

func (f fixedSource) Intn(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

// seqSource replays vals in order and fails the test when it runs dry.
type seqSource struct {
	t    *testing.T
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	s.t.Helper()
	if s.i >= len(s.vals) {
		s.t.Fatalf("seqSource exhausted after %d draws (Intn(%d))", s.i, n)
	}
	v := s.vals[s.i]
	s.i++
	if v >= n {
		s.t.Fatalf("seqSource value %d out of range for Intn(%d)", v, n)
	}
	return v
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// dumpRegion renders the grid window [x0,x1)x[y0,y1) for failure messages:
// H human, B bot, # conquered, . void.
func dumpRegion(g *Grid, x0, y0, x1, y1 int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "region (%d,%d)-(%d,%d) conquered=%d void=%d\n", x0, y0, x1, y1, g.ConqueredCount(), len(g.Unconquered()))
	for y := max(y0, 0); y < min(y1, GridHeight); y++ {
		for x := max(x0, 0); x < min(x1, GridWidth); x++ {
			cs := g.At(Cell{X: x, Y: y})
			switch {
			case cs.Occupant == OwnerHuman:
				b.WriteByte('H')
			case cs.Occupant == OwnerBot:
				b.WriteByte('B')
			case cs.Conquered:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// placeTrail puts a trail with the given body on g.
func placeTrail(g *Grid, owner Owner, heading Direction, body ...Cell) *Trail {
	t := &Trail{Heading: heading, Pending: heading, Owner: owner}
	for _, c := range body {
		t.Body = append(t.Body, c)
		g.SetOccupant(c, owner)
	}
	return t
}

func conquerAll(g *Grid) {
	g.ConquerRadius(Cell{X: GridWidth / 2, Y: GridHeight / 2}, GridWidth)
	g.RebuildUnconquered()
}
