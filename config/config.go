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

package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/retromachines/retrocore/clocks"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/engine"
	"github.com/retromachines/retrocore/logger"
	"github.com/retromachines/retrocore/paths"
	"github.com/retromachines/retrocore/scheduler"
	"github.com/retromachines/retrocore/session"
	"gopkg.in/yaml.v3"
)

// Sentinel error patterns.
const (
	Invalid   = "config: invalid preferences: %v"
	Malformed = "config: malformed preferences file: %v"
)

// the name of the preferences file in the resource directory
const prefsFile = "retrocore.yaml"

// DefaultPath returns the path of the preferences file.
func DefaultPath() string {
	return paths.ResourcePath(prefsFile)
}

// Prefs are the user's preferences.
type Prefs struct {
	ClockHz    int    `yaml:"clock_hz"`
	TickMS     int    `yaml:"tick_ms"`
	SampleRate int    `yaml:"sample_rate"`
	Audio      string `yaml:"audio"`

	// emulate the original monochrome hardware rather than the colour
	// hardware
	Classic bool `yaml:"classic"`

	Serial       bool `yaml:"serial"`
	Printer      bool `yaml:"printer"`
	SkipChecksum bool `yaml:"skip_checksum"`

	// start in fast-forward
	Unlimited bool `yaml:"unlimited"`

	// record audio to this file
	Wav string `yaml:"wav"`
}

// Default returns the default preferences.
func Default() Prefs {
	return Prefs{
		ClockHz:    clocks.DMG,
		TickMS:     int(clocks.Tick / time.Millisecond),
		SampleRate: clocks.SampleRate,
		Audio:      session.AudioNative.String(),
		Classic:    true,
	}
}

// Load preferences from the file. If the file does not exist then the default
// preferences are returned. Values missing from the file take the default
// value.
func Load(path string) (Prefs, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, curated.Errorf("config: %v", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		// an empty file decodes to io.EOF
		if len(bytes.TrimSpace(data)) > 0 {
			return Default(), curated.Errorf(Malformed, err)
		}
	}

	if err := p.Validate(); err != nil {
		return Default(), err
	}

	logger.Logf(logger.Allow, "config", "loaded %s", path)

	return p, nil
}

// Save preferences to the file. The directory containing the file is created
// if necessary.
func (p Prefs) Save(path string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return curated.Errorf("config: %v", err)
	}

	if err := paths.EnsureDir(path); err != nil {
		return curated.Errorf("config: %v", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return curated.Errorf("config: %v", err)
	}

	logger.Logf(logger.Allow, "config", "saved %s", path)

	return nil
}

// Validate returns an error if any preference has an unusable value.
func (p Prefs) Validate() error {
	if _, err := session.ParseAudioMode(p.Audio); err != nil {
		return curated.Errorf(Invalid, err)
	}
	if p.SampleRate < 8000 || p.SampleRate > 192000 {
		return curated.Errorf(Invalid, "sample rate out of range")
	}
	if p.Serial && p.Printer {
		return curated.Errorf(Invalid, "serial and printer can not both be attached")
	}
	if p.TickMS < 1 {
		return curated.Errorf(Invalid, "tick must be at least one millisecond")
	}
	if err := p.Scheduler().Validate(); err != nil {
		return curated.Errorf(Invalid, err)
	}
	return nil
}

// Scheduler returns the scheduler configuration described by the
// preferences.
func (p Prefs) Scheduler() scheduler.Config {
	return scheduler.Config{
		ClockHz:   p.ClockHz,
		Tick:      time.Duration(p.TickMS) * time.Millisecond,
		Unlimited: p.Unlimited,
	}
}

// Options returns the session options described by the preferences. The
// preferences should have been validated.
func (p Prefs) Options() session.Options {
	opts := session.Options{
		Revision:     engine.CGB,
		SkipChecksum: p.SkipChecksum,
		SampleRate:   p.SampleRate,
		WavFile:      p.Wav,
		Scheduler:    p.Scheduler(),
	}

	if p.Classic {
		opts.Revision = engine.DMG
	}

	switch {
	case p.Serial:
		opts.Text = engine.TextSerial
	case p.Printer:
		opts.Text = engine.TextPrinter
	default:
		opts.Text = engine.TextNone
	}

	// an invalid audio mode is treated as no audio
	opts.Audio, _ = session.ParseAudioMode(p.Audio)

	return opts
}
