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

// Package clocks defines the constant values that define the speed of the
// emulated handheld and the real-time parameters used to pace it.
//
// Values taken from the Pan Docs:
// https://gbdev.io/pandocs/Specifications.html
package clocks

import "time"

// Master clock rates in Hz.
const (
	// DMG and CGB in normal speed mode
	DMG = 4194304

	// CGB in double speed mode
	CGBDouble = DMG * 2
)

// Tick is the wall-clock duration of one scheduling interval.
const Tick = 16 * time.Millisecond

// SampleRate is the nominal audio output rate.
const SampleRate = 44100

// CyclesPerFrame is the number of master clock cycles taken to draw one
// complete screen, including vblank.
const CyclesPerFrame = 70224

// Screen geometry. Frames are delivered as RGB888.
const (
	ScreenWidth   = 160
	ScreenHeight  = 144
	BytesPerPixel = 3
	FrameSize     = ScreenWidth * ScreenHeight * BytesPerPixel
)

// CycleBudget returns the number of cycles that must complete in one tick of
// the given duration for a clock running at hz.
func CycleBudget(hz int, tick time.Duration) int {
	ms := float64(tick) / float64(time.Millisecond)
	return int(float64(hz)/1000.0*ms + 0.5)
}

// RefreshRate returns the number of frames per second for a clock running
// at hz.
func RefreshRate(hz int) float64 {
	return float64(hz) / CyclesPerFrame
}
