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

// Package cartridgeloader is used to load ROM data and to inspect the ROM
// header.
//
// When the ROM is ready to be loaded, the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
//	cl := cartridgeloader.NewLoader("roms/2048.gb")
//	err := cl.Load()
//
// The ROM header can be inspected with ParseHeader() and the header checksum
// verified with VerifyChecksum(). NewBlankROM() creates the smallest ROM that
// will pass verification.
package cartridgeloader
