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

package dummy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/retromachines/retrocore/audio"
	"github.com/retromachines/retrocore/cartridgeloader"
	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/userinput"
)

// the cost of each step repeats in this pattern. the values are typical
// instruction costs in master clock cycles
var stepCosts = [...]int{4, 8, 12, 4, 16, 4, 4, 24}

// size of cartridge RAM indexed by the RAM size code in the header
var ramSizes = [...]int{0, 0x800, 0x2000, 0x8000, 0x20000, 0x10000}

// amplitude of the tone produced when a key is held down
const toneAmplitude = 0.2

// Dummy is the reference Engine.
type Dummy struct {
	rev    engine.Revision
	header cartridgeloader.Header

	keys [userinput.NumKeys]bool

	// position in stepCosts
	step int

	// cycles since the start of the current frame
	cycles int

	frame      []byte
	frameNum   uint32
	frameReady bool

	sink      audio.Sink
	sampleAcc int
	phase     float64
	left      []float32
	right     []float32

	text      engine.TextOutput
	textOut   io.Writer
	textSent  bool
	savePath  string
	cartRAM   []byte
	cartDirty bool
}

// Factory creates a Dummy engine. It satisfies the engine.Factory type.
func Factory(rom []byte, rev engine.Revision, opts engine.FactoryOptions) (engine.Engine, error) {
	d, err := New(rom, rev, opts)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// New is the preferred method of initialisation for the Dummy type. The ROM
// header is checked. A ROM with an invalid header checksum is rejected unless
// SkipChecksum is set. A ROM that requires colour hardware is rejected if rev
// is DMG.
func New(rom []byte, rev engine.Revision, opts engine.FactoryOptions) (*Dummy, error) {
	h, err := cartridgeloader.ParseHeader(rom)
	if err != nil {
		return nil, curated.Errorf("dummy: %v", err)
	}

	if !opts.SkipChecksum {
		if err := cartridgeloader.VerifyChecksum(rom); err != nil {
			return nil, curated.Errorf("dummy: %v", err)
		}
	}

	if rev == engine.DMG && h.RequiresCGB() {
		return nil, curated.Errorf("dummy: %v", curated.Errorf(cartridgeloader.CGBOnly))
	}

	d := &Dummy{
		rev:      rev,
		header:   h,
		frame:    make([]byte, clocks.FrameSize),
		sink:     audio.Discard,
		textOut:  os.Stdout,
		savePath: opts.SavePath,
	}

	if int(h.RAMSize) < len(ramSizes) {
		d.cartRAM = make([]byte, ramSizes[h.RAMSize])
	}

	if d.savePath != "" && len(d.cartRAM) >= 4 {
		data, err := os.ReadFile(d.savePath)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, curated.Errorf("dummy: %v", err)
			}
		} else {
			copy(d.cartRAM, data)
			d.frameNum = binary.LittleEndian.Uint32(d.cartRAM)
		}
	}

	d.render()

	return d, nil
}

func (d *Dummy) String() string {
	return fmt.Sprintf("%s [%s]", d.header.Title, d.rev)
}

// Header returns the header of the ROM the Dummy was created with.
func (d *Dummy) Header() cartridgeloader.Header {
	return d.header
}

// FrameNum returns the number of frames completed, including those restored
// from the save file.
func (d *Dummy) FrameNum() uint32 {
	return d.frameNum
}

// SetTextWriter changes where link port text is written. The default is
// os.Stdout.
func (d *Dummy) SetTextWriter(w io.Writer) {
	d.textOut = w
}

// Step implements the engine.Engine interface.
func (d *Dummy) Step() int {
	cost := stepCosts[d.step]
	d.step = (d.step + 1) % len(stepCosts)

	d.generateAudio(cost)

	d.cycles += cost
	if d.cycles >= clocks.CyclesPerFrame {
		d.cycles -= clocks.CyclesPerFrame
		d.endFrame()
	}

	return cost
}

func (d *Dummy) endFrame() {
	d.frameNum++
	d.render()
	d.frameReady = true

	if len(d.cartRAM) >= 4 {
		binary.LittleEndian.PutUint32(d.cartRAM, d.frameNum)
		d.cartDirty = true
	}

	if len(d.left) > 0 {
		d.sink.Play(d.left, d.right)
		d.left = d.left[:0]
		d.right = d.right[:0]
	}

	if !d.textSent && d.text != engine.TextNone && d.textOut != nil {
		d.textSent = true
		fmt.Fprintf(d.textOut, "%s: %s\n", d.text, d.header.Title)
	}
}

// generateAudio produces the number of samples that correspond to the given
// number of cycles. the remainder is carried to the next call.
func (d *Dummy) generateAudio(cycles int) {
	d.sampleAcc += cycles * d.sink.SampleRate()
	for d.sampleAcc >= clocks.DMG {
		d.sampleAcc -= clocks.DMG

		var v float32
		if freq := d.toneFrequency(); freq > 0 {
			d.phase += freq / float64(d.sink.SampleRate())
			if d.phase >= 1.0 {
				d.phase -= 1.0
			}
			if d.phase < 0.5 {
				v = toneAmplitude
			} else {
				v = -toneAmplitude
			}
		}

		d.left = append(d.left, v)
		d.right = append(d.right, v)
	}
}

// frequency of the tone depends on the lowest numbered key that is held
// down. zero if no key is held down
func (d *Dummy) toneFrequency() float64 {
	for i, k := range d.keys {
		if k {
			return 220.0 * float64(i+2) / 2.0
		}
	}
	return 0.0
}

// render draws vertical bars that scroll by one pixel every frame. a key
// that is held down is drawn as a white block along the top edge
func (d *Dummy) render() {
	for y := 0; y < clocks.ScreenHeight; y++ {
		for x := 0; x < clocks.ScreenWidth; x++ {
			bar := ((x + int(d.frameNum)) / 20) % 4

			var r, g, b byte
			switch d.rev {
			case engine.CGB:
				r = byte(bar&0x01) * 0xff
				g = byte(bar&0x02>>1) * 0xff
				b = byte(y * 255 / clocks.ScreenHeight)
			default:
				shade := classicPalette[bar]
				r, g, b = shade[0], shade[1], shade[2]
			}

			if y < 8 && x < int(userinput.NumKeys)*16 && d.keys[x/16] {
				r, g, b = 0xff, 0xff, 0xff
			}

			i := (y*clocks.ScreenWidth + x) * clocks.BytesPerPixel
			d.frame[i] = r
			d.frame[i+1] = g
			d.frame[i+2] = b
		}
	}
}

// four shades of green
var classicPalette = [4][3]byte{
	{0x9b, 0xbc, 0x0f},
	{0x8b, 0xac, 0x0f},
	{0x30, 0x62, 0x30},
	{0x0f, 0x38, 0x0f},
}

// FrameReady implements the engine.Engine interface.
func (d *Dummy) FrameReady() bool {
	r := d.frameReady
	d.frameReady = false
	return r
}

// Frame implements the engine.Engine interface.
func (d *Dummy) Frame() []byte {
	return d.frame
}

// SetKey implements the engine.Engine interface.
func (d *Dummy) SetKey(key userinput.Key, pressed bool) {
	if key < 0 || int(key) >= len(d.keys) {
		return
	}
	d.keys[key] = pressed
}

// ResyncAudio implements the engine.Engine interface.
func (d *Dummy) ResyncAudio() {
	d.left = d.left[:0]
	d.right = d.right[:0]
	d.sampleAcc = 0
	if r, ok := d.sink.(audio.Resyncer); ok {
		r.Resync()
	}
}

// SetAudioSink implements the engine.Engine interface.
func (d *Dummy) SetAudioSink(sink audio.Sink) {
	if sink == nil {
		sink = audio.Discard
	}
	d.sink = sink
	d.left = d.left[:0]
	d.right = d.right[:0]
	d.sampleAcc = 0
}

// SetTextOutput implements the engine.Engine interface.
func (d *Dummy) SetTextOutput(mode engine.TextOutput) {
	d.text = mode
}

// Close writes the cartridge RAM to the save file, if one was specified.
func (d *Dummy) Close() error {
	if d.savePath == "" || !d.cartDirty {
		return nil
	}
	if err := os.WriteFile(d.savePath, d.cartRAM, 0o644); err != nil {
		return curated.Errorf("dummy: %v", err)
	}
	d.cartDirty = false
	logger.Logf(logger.Allow, "dummy", "saved cartridge RAM to %s", d.savePath)
	return nil
}
