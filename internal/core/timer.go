package core

import "time"

// FixedStep paces simulation updates at a steady generations-per-second rate
// independent of how often the host loop polls it.
type FixedStep struct {
	step time.Duration
	acc  time.Duration
	last time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.acc = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the host loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.acc += now.Sub(f.last)
	f.last = now
	if f.acc >= f.step {
		f.acc -= f.step
		return true
	}
	return false
}
