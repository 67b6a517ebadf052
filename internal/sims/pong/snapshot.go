package pong

// Snapshot is a value copy of the world taken between ticks.
type Snapshot struct {
	Tick     uint64
	Arena    Arena
	Ball     Ball
	Player   Paddle
	Opponent Paddle

	Phase  Phase
	Scored Side // side that won a point this tick
	Hit    Side // paddle struck this tick
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:     w.tick,
		Arena:    w.arena,
		Ball:     w.ball,
		Player:   w.player,
		Opponent: w.opponent,
		Phase:    w.phase,
		Scored:   w.scored,
		Hit:      w.hit,
	}
}
