package game

import "time"

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon           // void exhausted and every bot dead
	PhaseLost          // human trail died
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

// Banner is the end-of-game message for p, empty while playing.
func (p Phase) Banner() string {
	switch p {
	case PhaseWon:
		return "you win, arrow key to restart"
	case PhaseLost:
		return "you lose, arrow key to restart"
	}
	return ""
}

// Stats are running counters kept across resets.
type Stats struct {
	Ticks       uint64
	BotRespawns uint64
	Resets      uint64
}

// Session owns the grid and every trail and drives them one tick at a time.
// It is not safe for concurrent use; one loop goroutine owns it.
type Session struct {
	Grid   *Grid
	Human  *Trail
	Bots   []*Trail
	Events *EventBus

	phase        Phase
	since        time.Time
	resetPending bool
	lastTick     time.Time

	rng   Source
	stats Stats
}

// NewSession starts a game. now anchors the tick gate.
func NewSession(rng Source, now time.Time) *Session {
	s := &Session{
		Events:   NewEventBus(),
		rng:      rng,
		lastTick: now,
	}
	s.newGame()
	return s
}

func (s *Session) newGame() {
	s.Grid, s.Human = NewBoard()
	s.Bots = SpawnPopulation(s.Grid, s.rng, MaxBotNumber)
	s.phase = PhasePlaying
	s.since = time.Time{}
}

func (s *Session) Phase() Phase { return s.phase }

// Since is the instant the current Won/Lost phase began; zero while playing.
func (s *Session) Since() time.Time { return s.since }

func (s *Session) Stats() Stats { return s.stats }

// Rand exposes the session's random source to frontends that need it for
// cosmetic draws (the victory colour cycle).
func (s *Session) Rand() Source { return s.rng }

// SetIntent writes the human trail's pending heading.
func (s *Session) SetIntent(d Direction) {
	s.Human.SetIntent(d)
}

// RequestReset asks for a new game on the next tick. It is honoured only in
// the Won or Lost phase and only once ResetDwell has passed since entering it.
func (s *Session) RequestReset(now time.Time) bool {
	if s.phase == PhasePlaying {
		return false
	}
	if now.Sub(s.since) <= ResetDwell {
		return false
	}
	s.resetPending = true
	return true
}

// HandleDirection applies a direction key press: it requests a reset when the
// game is over and steers the human trail.
func (s *Session) HandleDirection(d Direction, now time.Time) {
	s.RequestReset(now)
	s.SetIntent(d)
}

// Advance runs one Tick if more than TickInterval elapsed since the last one.
// Missed intervals are not caught up.
func (s *Session) Advance(now time.Time) bool {
	if now.Sub(s.lastTick) <= TickInterval {
		return false
	}
	s.Tick(now)
	s.lastTick = now
	return true
}

// Tick runs one simulation step: pending reset, win check, human move, then
// every bot in index order.
func (s *Session) Tick(now time.Time) {
	s.stats.Ticks++

	if s.resetPending {
		s.resetPending = false
		s.newGame()
		s.stats.Resets++
		s.emit(Event{Type: EventReset, At: now, Phase: s.phase})
		s.emit(Event{Type: EventPhaseChanged, At: now, Phase: s.phase})
	}

	if s.phase == PhasePlaying && s.Grid.IsEmptyVoid() && LiveBots(s.Bots) == 0 {
		s.enter(PhaseWon, now)
	}
	if s.phase != PhasePlaying {
		return
	}

	if res := Step(s.Human, s.Grid, s.rng); res.Died() {
		head, _ := s.Human.Head()
		// The old bot bodies stay painted on the grid; only the population is replaced.
		s.Bots = SpawnPopulation(s.Grid, s.rng, MaxBotNumber)
		s.enter(PhaseLost, now)
		s.emit(Event{Type: EventHumanDied, At: now, Phase: s.phase, Cell: head, Cause: res})
	}

	for i, b := range s.Bots {
		if Step(b, s.Grid, s.rng).Died() {
			s.Bots[i] = SpawnBot(s.Grid, s.rng)
			s.stats.BotRespawns++
		}
	}
}

func (s *Session) enter(p Phase, now time.Time) {
	s.phase = p
	s.since = now
	s.emit(Event{Type: EventPhaseChanged, At: now, Phase: p})
}

func (s *Session) emit(e Event) {
	e.Tick = s.stats.Ticks
	s.Events.Emit(e)
}
