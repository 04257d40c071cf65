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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions are generic and
// compare any two values of the same comparable type. ExpectApproximate()
// compares numeric values within a fractional tolerance.
//
// ExpectSuccess() and ExpectFailure() accept bool or error values:
//
//	bool -> true is success, false is failure
//	error -> nil is success, non-nil is failure
//
// The Demand*() variants stop the test immediately on failure, which is
// useful when the remainder of the test depends on the outcome.
//
// All functions accept optional tags which are printed with the failure
// message, helping to identify the failing case in table driven tests.
//
// ExpectPanic() is used to check the fail-fast protocol violations of the
// session and userinput packages.
package test
