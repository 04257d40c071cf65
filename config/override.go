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
	"fmt"
	"strings"

	"github.com/retromachines/retrocore/curated"
	"gopkg.in/yaml.v3"
)

// Override preferences with the values in the string. The string is a
// list of key/value pairs separated by semi-colons. The key and value are
// separated by a double colon. The key is the name used in the preferences
// file. For example:
//
//	"audio::none; tick_ms::8"
//
// The preferences are not changed if an error is returned.
func (p *Prefs) Override(s string) error {
	o := *p

	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}

		k, v, ok := strings.Cut(kv, "::")
		if !ok {
			return curated.Errorf(Invalid, fmt.Sprintf("override is not a key/value pair (%s)", kv))
		}

		doc := fmt.Sprintf("%s: %s", strings.TrimSpace(k), strings.TrimSpace(v))

		dec := yaml.NewDecoder(strings.NewReader(doc))
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil {
			return curated.Errorf(Invalid, err)
		}
	}

	if err := o.Validate(); err != nil {
		return err
	}

	*p = o

	return nil
}
