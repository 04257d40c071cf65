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

package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"github.com/retromachines/retrocore/curated"
	"github.com/retromachines/retrocore/logger"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// NotATerminal is the error pattern returned by New() when the input file is
// not a terminal.
const NotATerminal = "terminal: %s is not a terminal"

// Terminal is the container for the input and output files.
type Terminal struct {
	input  *os.File
	output io.Writer

	canAttr unix.Termios
	rawAttr unix.Termios

	crit sync.Mutex
	raw  bool
}

// New creates a Terminal for the input and output files. The terminal is in
// canonical mode until RawMode() is called.
func New(input *os.File, output io.Writer) (*Terminal, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}

	t := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	t.rawAttr = t.canAttr
	termios.Cfmakeraw(&t.rawAttr)

	// raw mode turns off output processing. the status line needs newline
	// translation to remain in place
	t.rawAttr.Oflag |= unix.OPOST

	return t, nil
}

// RawMode puts the terminal into raw mode.
func (t *Terminal) RawMode() error {
	t.crit.Lock()
	defer t.crit.Unlock()

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.rawAttr); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	t.raw = true
	return nil
}

// CanonicalMode puts the terminal into normal, everyday canonical mode.
func (t *Terminal) CanonicalMode() error {
	t.crit.Lock()
	defer t.crit.Unlock()

	if !t.raw {
		return nil
	}
	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.canAttr); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	t.raw = false
	return nil
}

// Status overwrites the current line of the output with the formatted
// string. The string is truncated if it is wider than the output terminal.
func (t *Terminal) Status(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if w := t.width(); w > 0 && len(s) >= w {
		s = s[:w-1]
	}
	fmt.Fprintf(t.output, "\r\x1b[K%s", s)
}

// width of the output in columns. zero if the output is not a terminal
func (t *Terminal) width() int {
	f, ok := t.output.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// Input returns the input file.
func (t *Terminal) Input() io.Reader {
	return t.input
}

// Close returns the terminal to canonical mode.
func (t *Terminal) Close() error {
	err := t.CanonicalMode()
	if err == nil {
		fmt.Fprintln(t.output)
	}
	logger.Log(logger.Allow, "terminal", "restored canonical mode")
	return err
}
