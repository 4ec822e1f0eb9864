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

// Package curated wraps the plain Go error type so that errors raised by the
// emulation can be tested by the pattern that created them, rather than by the
// formatted message.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf():
//
//	e := curated.Errorf("luigi: unknown block type %02X", t)
//
//	if curated.Is(e, "luigi: unknown block type %02X") {
//		...
//	}
//
// Has() searches the whole chain of wrapped curated errors for a pattern.
// Packages should export the patterns they use as constants so that callers
// can refer to them without duplicating the string.
//
// The Error() implementation removes adjacent duplicate parts from the
// message chain, where parts are separated by ": ". Wrapping an error that
// already begins with the same prefix therefore does not produce
// "loader: loader: ..." style messages.
package curated
