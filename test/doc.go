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

// Package test contains helper functions that remove common boilerplate from
// the tests in the rest of the module.
//
// The Expect functions report failure with t.Errorf() and allow the test to
// continue. The Demand functions report failure with t.Fatalf() and should be
// used when the value is required by later parts of the test, for example the
// length of a slice that is about to be iterated over.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is successful if it is true and an error is successful if it
// is nil. An untyped nil is treated as a successful value because that is how
// a nil error arrives when passed through an interface.
//
// The Writer type implements io.Writer and can be used to capture output for
// comparison.
package test
