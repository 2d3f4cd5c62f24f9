package game

import "time"

// Pacer hands out ticks on a fixed TickInterval schedule to a loop that polls
// at its own rate (a vsync'd frame loop). A loop that falls a whole interval
// behind skips ahead instead of bursting.
type Pacer struct {
	next time.Time
}

func NewPacer(now time.Time) *Pacer {
	return &Pacer{next: now.Add(TickInterval)}
}

// Due reports whether a tick is owed at now and, if so, books the next one.
func (p *Pacer) Due(now time.Time) bool {
	if now.Before(p.next) {
		return false
	}
	p.next = p.next.Add(TickInterval)
	if !now.Before(p.next) {
		p.next = now.Add(TickInterval)
	}
	return true
}
