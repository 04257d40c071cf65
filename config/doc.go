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

// Package config loads and saves the user's preferences. Preferences are
// stored as YAML in the retrocore resource directory (see the paths package).
//
// A missing preferences file is not an error. The default values are used
// instead:
//
//	p, err := config.Load(config.DefaultPath())
//	opts := p.Options()
//
// Individual preferences can be overridden from the command line with a
// string of the form:
//
//	"audio::none; tick_ms::8"
package config
