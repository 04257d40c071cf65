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

// Package logger is the central log for the emulation core. Log entries are
// tagged with the name of the originating component, eg. "scheduler" or
// "session".
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count, which keeps the log useful when a component logs the same
// condition on every tick.
//
// Logging can be gated by a Permission. The Allow value should be used when
// an entry should always be made.
package logger
