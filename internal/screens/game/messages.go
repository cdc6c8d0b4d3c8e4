package game

import "time"

// frameInterval is how often the field is advanced and redrawn.
const frameInterval = 50 * time.Millisecond

// maxFrameStep caps a single frame's time step so a stalled terminal does
// not drop every equation at once.
const maxFrameStep = 250 * time.Millisecond

// flashDuration is how long answer feedback stays on screen.
const flashDuration = 700 * time.Millisecond

// frameMsg drives the game loop.
type frameMsg time.Time
