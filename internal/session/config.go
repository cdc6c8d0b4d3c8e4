package session

import "time"

// Config holds the tunable rules of a play session.
type Config struct {
	// Lives is the number of equations the player may let hit the ground.
	Lives int

	// CorrectPerLevel is how many correct answers advance one level.
	CorrectPerLevel int

	// PointsPerLevel is awarded per correct answer, multiplied by the level.
	PointsPerLevel int

	// WrongPenalty is subtracted for a wrong answer (score never drops below 0).
	WrongPenalty int

	// BaseSpawnInterval is the spawn interval at level 1.
	BaseSpawnInterval time.Duration

	// MinSpawnInterval is the floor the spawn interval shrinks to.
	MinSpawnInterval time.Duration

	// SpawnStep is how much the interval shrinks per level.
	SpawnStep time.Duration

	// FallTime is how long an equation takes to reach the ground at level 1.
	FallTime time.Duration
}

// DefaultConfig returns the standard game rules.
func DefaultConfig() Config {
	return Config{
		Lives:             3,
		CorrectPerLevel:   10,
		PointsPerLevel:    10,
		WrongPenalty:      5,
		BaseSpawnInterval: 3 * time.Second,
		MinSpawnInterval:  1500 * time.Millisecond,
		SpawnStep:         200 * time.Millisecond,
		FallTime:          8 * time.Second,
	}
}

// SpawnInterval returns the time between spawns at level.
func (c Config) SpawnInterval(level int) time.Duration {
	d := c.BaseSpawnInterval - time.Duration(level-1)*c.SpawnStep
	if d < c.MinSpawnInterval {
		return c.MinSpawnInterval
	}
	return d
}

// FallRate returns the fraction of the field height an equation falls per
// second at level. Speed grows by 20% per level.
func (c Config) FallRate(level int) float64 {
	if c.FallTime <= 0 {
		return 0
	}
	return (1 + float64(level-1)*0.2) / c.FallTime.Seconds()
}
