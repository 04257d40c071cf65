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

package main

import (
	"strings"

	"github.com/retromachines/retrocore/cartridgeloader"
	"github.com/retromachines/retrocore/config"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/modalflag"
	"github.com/retromachines/retrocore/paths"
)

// the title of the cartridge run when no cartridge is specified
const demoTitle = "RETROCORE"

// prefsFlags are the command line flags that override preferences file values.
type prefsFlags struct {
	dmg        *bool
	serial     *bool
	printer    *bool
	nochecksum *bool
	audio      *string
	wav        *string
	unlimited  *bool
	prefs      *string
}

func addPrefsFlags(md *modalflag.Modes, defaults config.Prefs) prefsFlags {
	return prefsFlags{
		dmg:        md.AddBool("dmg", defaults.Classic, "emulate the original monochrome hardware"),
		serial:     md.AddBool("serial", defaults.Serial, "echo serial output to the terminal"),
		printer:    md.AddBool("printer", defaults.Printer, "attach a printer and echo its output to the terminal"),
		nochecksum: md.AddBool("nochecksum", defaults.SkipChecksum, "do not verify the cartridge header checksum"),
		audio:      md.AddString("audio", defaults.Audio, "audio output: NATIVE or NONE"),
		wav:        md.AddString("wav", defaults.Wav, "record audio to file (AUTO for a unique filename)"),
		unlimited:  md.AddBool("unlimited", defaults.Unlimited, "start without frame rate limiting"),
		prefs:      md.AddString("prefs", "", "preference overrides (eg. \"tick_ms::8; sample_rate::48000\")"),
	}
}

// apply the flags that were set on the command line to the preferences. the
// -prefs override string is applied last.
func (f prefsFlags) apply(md *modalflag.Modes, prefs *config.Prefs) error {
	md.Visit(func(flag string) {
		switch flag {
		case "dmg":
			prefs.Classic = *f.dmg
		case "serial":
			prefs.Serial = *f.serial
		case "printer":
			prefs.Printer = *f.printer
		case "nochecksum":
			prefs.SkipChecksum = *f.nochecksum
		case "audio":
			prefs.Audio = strings.ToLower(*f.audio)
		case "wav":
			prefs.Wav = *f.wav
		case "unlimited":
			prefs.Unlimited = *f.unlimited
		}
	})

	if *f.prefs != "" {
		if err := prefs.Override(*f.prefs); err != nil {
			return err
		}
	}

	return prefs.Validate()
}

// loadCartridge loads the cartridge named in the remaining arguments. With no
// arguments the demonstration cartridge is returned.
func loadCartridge(md *modalflag.Modes, cgb bool) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{
			Filename: "demo",
			Data:     cartridgeloader.NewBlankROM(demoTitle, cgb),
		}, nil
	case 1:
		cl := cartridgeloader.NewLoader(md.GetArg(0))
		if err := cl.Load(); err != nil {
			return cartridgeloader.Loader{}, err
		}
		return cl, nil
	}
	return cartridgeloader.Loader{}, curated.Errorf("too many arguments for %s mode", md)
}

// wavFilename resolves the AUTO value of the -wav flag.
func wavFilename(wav string, cl cartridgeloader.Loader) string {
	if strings.ToUpper(wav) != "AUTO" {
		return wav
	}
	return paths.UniqueFilename("audio", cl.ShortName()) + ".wav"
}
