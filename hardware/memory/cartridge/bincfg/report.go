// This file is part of Locutus.
//
// Locutus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Locutus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Locutus.  If not, see <https://www.gnu.org/licenses/>.

package bincfg

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/locutus/logger"
)

// Report collects the problems found by Import() and Export().
type Report struct {
	// every problem in the order that it was found. errors are prefixed
	// with "ERROR: " and warnings with "WARNING: "
	Messages []string

	Errors   int
	Warnings int
}

func (rep *Report) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	rep.Messages = append(rep.Messages, "ERROR: "+msg)
	rep.Errors++
	logger.Logf(logger.Allow, "bincfg", "error: %s", msg)
}

func (rep *Report) warningf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	rep.Messages = append(rep.Messages, "WARNING: "+msg)
	rep.Warnings++
	logger.Logf(logger.Allow, "bincfg", "warning: %s", msg)
}

func (rep *Report) String() string {
	return strings.Join(rep.Messages, "\n")
}
