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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the error and can be checked with Is() or,
// for a pattern somewhere in a chain of curated errors, with Has().
//
//	e := curated.Errorf("pipeline: %v", pipeline.Disconnected)
//
// Sentinel patterns are exported as string constants by the packages that
// raise them. For example, the pipeline package exports Disconnected:
//
//	if curated.Is(err, pipeline.Disconnected) {
//		// peer has gone away
//	}
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ", so wrapping an
// error with the same prefix at each level of a call chain does not produce
// a stuttering message:
//
//	curated.Errorf("session: %v", curated.Errorf("session: %v", "bad rom"))
//
// produces "session: bad rom".
//
// Values passed to Errorf() that are errors are available through the
// Unwrap() method, so the standard errors.Is() and errors.As() functions
// work with curated errors too.
package curated
