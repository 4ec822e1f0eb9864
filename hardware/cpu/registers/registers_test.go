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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/test"
)

func TestStatusString(t *testing.T) {
	var sr registers.Status
	test.ExpectEquality(t, sr.String(), "szocid")

	sr.Sign = true
	sr.Carry = true
	sr.InterruptsEnabled = true
	test.ExpectEquality(t, sr.String(), "SzoCId")

	sr.SetDBD()
	test.ExpectEquality(t, sr.String(), "SzoCID")
}

func TestDoubleByteData(t *testing.T) {
	var sr registers.Status

	// the flag survives the SDBD instruction and is visible to the following
	// instruction only
	sr.SetDBD()
	sr.Shift()
	test.ExpectSuccess(t, sr.DBD())
	sr.Shift()
	test.ExpectFailure(t, sr.DBD())
}

func TestStatusWord(t *testing.T) {
	var sr registers.Status
	sr.Sign = true
	sr.Overflow = true
	test.ExpectEquality(t, sr.Word(), uint16(0xa0a0))

	var rs registers.Status
	rs.LoadWord(0xff50)
	test.ExpectFailure(t, rs.Sign)
	test.ExpectSuccess(t, rs.Zero)
	test.ExpectFailure(t, rs.Overflow)
	test.ExpectSuccess(t, rs.Carry)
}

func TestFileString(t *testing.T) {
	var f registers.File
	f.R[registers.PC] = 0x1000
	tw := &test.Writer{}
	tw.Write([]byte(f.String()))
	test.ExpectSuccess(t, tw.Compare("R0=0000 R1=0000 R2=0000 R3=0000 R4=0000 R5=0000 R6=0000 R7=1000 SR=szocid"))
}
