package game

import (
	"log/slog"
	"math/rand/v2"

	"github.com/abhisek/mathdrop/internal/mathgen"
	sess "github.com/abhisek/mathdrop/internal/session"
	"github.com/abhisek/mathdrop/internal/store"
)

// Deps bundles what a play session needs from the rest of the app.
// Events and Scores may be nil, in which case nothing is persisted.
type Deps struct {
	Grade          int
	Rules          sess.Config
	Events         store.EventRepo
	Scores         store.HighScoreRepo
	DeviceID       string
	PlayerName     string
	EventRetention int
	Logger         *slog.Logger

	// DisableTelemetry stops game events from being recorded. Pruning of
	// events left from earlier games still runs.
	DisableTelemetry bool

	// NewGenerator and NewPositions override randomness in tests.
	NewGenerator func(grade int) sess.EquationSource
	NewPositions func() sess.PositionSource
}

func (d Deps) generator() sess.EquationSource {
	if d.NewGenerator != nil {
		return d.NewGenerator(d.Grade)
	}
	return mathgen.New(d.Grade)
}

func (d Deps) positions() sess.PositionSource {
	if d.NewPositions != nil {
		return d.NewPositions()
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
