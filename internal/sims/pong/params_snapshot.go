package pong

import (
	"strconv"

	"pong/internal/core"
)

// Parameters describes the fixed physics and the live match state.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Arena",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				boolParam("auto", "Auto player", w.cfg.AutoPlayer),
			},
		},
		{
			Name:    "Physics",
			Summary: "fixed per-tick values at 60 TPS",
			Params: []core.Parameter{
				floatParam("paddle_width", "Paddle width", PaddleWidth),
				floatParam("paddle_height", "Paddle height", PaddleHeight),
				floatParam("ball_radius", "Ball radius", BallRadius),
				floatParam("ball_speed_initial", "Initial speed", InitialBallSpeed),
				floatParam("ball_speed_max", "Max speed", MaxBallSpeed),
				floatParam("ball_speed_step", "Speed per hit", SpeedIncrement),
				floatParam("opponent_gain", "Opponent gain", OpponentGain),
			},
		},
		{
			Name: "Match",
			Params: []core.Parameter{
				uintParam("tick", "Tick", w.tick),
				floatParam("ball_speed", "Ball speed", w.ball.Speed),
				floatParam("ball_speed_peak", "Peak speed", w.stats.PeakSpeed),
				intParam("player_score", "Player", w.player.Score),
				intParam("opponent_score", "Opponent", w.opponent.Score),
				intParam("player_hits", "Player hits", w.stats.PlayerHits),
				intParam("opponent_hits", "Opponent hits", w.stats.OpponentHits),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
