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

// Package digest produces fingerprints of the output of an Engine. The
// fingerprints are chained so that the final value depends on every frame
// (or every audio sample) produced, and on the order in which they were
// produced.
//
// Fingerprints are used for regression testing. They are not suitable for
// any cryptographic task.
package digest

// Digest implementations return a hash of the data seen so far.
type Digest interface {
	Hash() string
	ResetDigest()
}
