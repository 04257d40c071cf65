// This file is part of Retrocore.
//
// Retrocore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retrocore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retrocore.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"time"

	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/limiter"
)

// Sentinel error patterns.
const (
	InvalidConfig = "scheduler: invalid config: %v"
)

// Config for a Scheduler.
type Config struct {
	// master clock rate of the Engine in Hz
	ClockHz int

	// wall-clock duration of one tick
	Tick time.Duration

	// start without pacing. the same as if a SpeedUnlimited event was the
	// first event received
	Unlimited bool

	// creates the Pulse that paces the emulation. if nil the pulse is a
	// limiter.WallClock
	Pulse func(tick time.Duration) limiter.Pulse

	// called on the scheduler goroutine at the end of every tick, after
	// events have been applied and before waiting for the next tick
	OnTick func(Stats)
}

// DefaultConfig returns the configuration for the reference hardware.
func DefaultConfig() Config {
	return Config{
		ClockHz: clocks.DMG,
		Tick:    clocks.Tick,
	}
}

// Validate returns an error if the configuration cannot be used.
func (cfg Config) Validate() error {
	if cfg.ClockHz <= 0 {
		return curated.Errorf(InvalidConfig, "clock rate must be positive")
	}
	if cfg.Tick < time.Millisecond {
		return curated.Errorf(InvalidConfig, "tick must be at least one millisecond")
	}
	if clocks.CycleBudget(cfg.ClockHz, cfg.Tick) < 1 {
		return curated.Errorf(InvalidConfig, "cycle budget is zero")
	}
	return nil
}

// Budget returns the number of cycles to be consumed every tick.
func (cfg Config) Budget() int {
	return clocks.CycleBudget(cfg.ClockHz, cfg.Tick)
}

func wallClock(tick time.Duration) limiter.Pulse {
	return limiter.NewPulse(tick)
}
