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

package cartridgeloader

import (
	"strings"

	"github.com/retromachines/retrocore/curated"
)

// Sentinel error patterns.
const (
	TooSmall       = "cartridgeloader: rom too small (%d bytes)"
	HeaderChecksum = "cartridgeloader: header checksum mismatch (%#02x, expected %#02x)"
	CGBOnly        = "cartridgeloader: rom requires colour hardware"
)

// addresses of fields in the cartridge header
const (
	addrTitle          = 0x0134
	addrCGBFlag        = 0x0143
	addrCartType       = 0x0147
	addrROMSize        = 0x0148
	addrRAMSize        = 0x0149
	addrHeaderChecksum = 0x014d
)

// MinSize is the smallest valid ROM. A ROM is always at least two banks.
const MinSize = 0x8000

// values of the CGB flag
const (
	cgbSupported = 0x80
	cgbRequired  = 0xc0
)

// Header is the information in the ROM header.
type Header struct {
	Title          string
	CGBFlag        uint8
	CartType       uint8
	ROMSize        uint8
	RAMSize        uint8
	HeaderChecksum uint8
}

// ParseHeader returns the header of the ROM data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < MinSize {
		return Header{}, curated.Errorf(TooSmall, len(data))
	}

	h := Header{
		CGBFlag:        data[addrCGBFlag],
		CartType:       data[addrCartType],
		ROMSize:        data[addrROMSize],
		RAMSize:        data[addrRAMSize],
		HeaderChecksum: data[addrHeaderChecksum],
	}

	// title is padded with zeroes. on colour cartridges the last byte of the
	// title area is the CGB flag
	end := addrCGBFlag + 1
	if h.CGBFlag&cgbSupported == cgbSupported {
		end = addrCGBFlag
	}
	h.Title = strings.TrimRight(string(data[addrTitle:end]), "\x00 ")

	return h, nil
}

// SupportsCGB returns true if the ROM can make use of colour hardware.
func (h Header) SupportsCGB() bool {
	return h.CGBFlag&cgbSupported == cgbSupported
}

// RequiresCGB returns true if the ROM will only run on colour hardware.
func (h Header) RequiresCGB() bool {
	return h.CGBFlag == cgbRequired
}

// Checksum calculates the header checksum for the ROM data. The data must be
// at least MinSize bytes long.
func Checksum(data []byte) uint8 {
	var x uint8
	for _, v := range data[addrTitle:addrHeaderChecksum] {
		x = x - v - 1
	}
	return x
}

// VerifyChecksum returns an error if the header checksum stored in the ROM
// does not match the calculated checksum.
func VerifyChecksum(data []byte) error {
	h, err := ParseHeader(data)
	if err != nil {
		return err
	}
	if c := Checksum(data); c != h.HeaderChecksum {
		return curated.Errorf(HeaderChecksum, h.HeaderChecksum, c)
	}
	return nil
}

// NewBlankROM creates the smallest valid ROM with the given title. The code
// area is empty. It is useful for demonstrating the emulation core when no
// ROM is available.
func NewBlankROM(title string, cgb bool) []byte {
	data := make([]byte, MinSize)
	copy(data[addrTitle:addrCGBFlag], title)
	if cgb {
		data[addrCGBFlag] = cgbSupported
	}
	data[addrHeaderChecksum] = Checksum(data)
	return data
}
