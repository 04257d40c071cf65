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

package performance

import "github.com/retromachines/retrocore/clocks"

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of the
// refresh rate of hardware running at the clock rate hz.
func CalcFPS(hz int, numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / clocks.RefreshRate(hz)
	return fps, accuracy
}

// CalcCycleRate takes the number of cycles and duration (in seconds) and
// returns the accuracy of the cycle rate as a percentage of the clock rate
// hz.
func CalcCycleRate(hz int, numCycles uint64, duration float64) (accuracy float64) {
	return 100 * float64(numCycles) / (duration * float64(hz))
}
