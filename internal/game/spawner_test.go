package game

import "testing"

func TestSpawnBot_EmptyVoidYieldsPlaceholder(t *testing.T) {
	g := NewGrid()
	conquerAll(g)

	bot := SpawnBot(g, fixedSource{0})
	if bot.Alive() || bot.Owner != OwnerBot || bot.Heading != Right {
		t.Fatalf("bot = %+v, want empty placeholder", bot)
	}
}

func TestSpawnBot_OccupiedPickYieldsPlaceholder(t *testing.T) {
	g := NewGrid()
	target := g.Unconquered()[0]
	g.SetOccupant(target, OwnerHuman)

	bot := SpawnBot(g, fixedSource{0})
	if bot.Alive() {
		t.Fatalf("bot spawned on occupied cell: %+v", bot)
	}
	if g.OccupantAt(target) != OwnerHuman {
		t.Fatal("spawn overwrote the occupant")
	}
}

func TestSpawnBot_Places(t *testing.T) {
	g := NewGrid()
	g.ConquerRadius(Cell{X: 0, Y: 0}, 10)
	g.RebuildUnconquered()
	want := g.Unconquered()[5]

	bot := SpawnBot(g, fixedSource{5})
	if bot.Len() != 1 || bot.Body[0] != want {
		t.Fatalf("bot body = %v, want [%v]", bot.Body, want)
	}
	if bot.Heading != Right || bot.Pending != Right {
		t.Fatalf("heading = %v", bot.Heading)
	}
	if g.OccupantAt(want) != OwnerBot {
		t.Fatal("spawn cell not marked bot")
	}
	if g.IsConquered(want) {
		t.Fatal("spawned on a conquered cell")
	}
}

func TestSpawnPopulation(t *testing.T) {
	g, _ := NewBoard()
	bots := SpawnPopulation(g, NewRand(7), MaxBotNumber)
	if len(bots) != MaxBotNumber {
		t.Fatalf("population = %d", len(bots))
	}

	onGrid := 0
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			if g.OccupantAt(Cell{X: x, Y: y}) == OwnerBot {
				onGrid++
			}
		}
	}
	if live := LiveBots(bots); live != onGrid {
		t.Fatalf("live bots %d but %d bot cells on grid", live, onGrid)
	}
	for _, b := range bots {
		if b.Alive() && g.IsConquered(b.Body[0]) {
			t.Fatalf("bot spawned on conquered cell %v", b.Body[0])
		}
	}
}

func TestSpawnPopulation_SamePickCollapses(t *testing.T) {
	g := NewGrid()
	bots := SpawnPopulation(g, fixedSource{3}, 10)
	if len(bots) != 10 {
		t.Fatalf("population = %d", len(bots))
	}
	if live := LiveBots(bots); live != 1 {
		t.Fatalf("live = %d, want 1 (later picks hit the occupied cell)", live)
	}
}
