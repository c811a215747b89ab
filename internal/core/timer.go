package core

import "time"

// DefaultTPS is used whenever a non-positive tick rate is requested.
const DefaultTPS = 60

// Pacer tracks the interval between ticks of a driving loop.
type Pacer struct {
	tps  int
	step time.Duration
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate and reports whether it differs from the
// previous one. It is safe to call from the main loop.
func (p *Pacer) SetTPS(tps int) bool {
	if tps <= 0 {
		tps = DefaultTPS
	}
	if tps == p.tps {
		return false
	}
	p.tps = tps
	p.step = time.Second / time.Duration(tps)
	return true
}

// TPS returns the active tick rate.
func (p *Pacer) TPS() int { return p.tps }

// Interval returns the duration of a single tick.
func (p *Pacer) Interval() time.Duration { return p.step }
