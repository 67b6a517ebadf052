package pong

import "fmt"

// Side identifies a paddle owner.
type Side uint8

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Phase is the round state observed at the end of a tick.
type Phase uint8

const (
	// PhasePlaying is the steady state between points.
	PhasePlaying Phase = iota
	// PhasePointScored marks the tick on which a point was scored and the
	// ball reset. It never persists into the following tick.
	PhasePointScored
)

func (p Phase) String() string {
	if p == PhasePointScored {
		return "point-scored"
	}
	return "playing"
}

// CheckScore reports which side, if any, wins a point with the ball where it
// is. A ball past the left edge is the opponent's point; past the right edge
// is the player's.
func CheckScore(b Ball, a Arena) Side {
	switch {
	case b.X-b.Radius < 0:
		return SideOpponent
	case b.X+b.Radius > a.W:
		return SidePlayer
	default:
		return SideNone
	}
}

// ResetBall serves the ball from the horizontal center at a random height.
// Only the horizontal velocity is reversed; VY carries over from before the
// point.
func ResetBall(b *Ball, a Arena, u float64) {
	b.X = a.W / 2
	b.Y = (a.H-b.Radius*2)*u + b.Radius
	b.VX = -b.VX
	b.Speed = InitialBallSpeed
}
