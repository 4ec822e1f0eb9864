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

package script

import (
	"fmt"

	"github.com/jetsetilly/locutus/curated"
	"github.com/jetsetilly/locutus/hardware/cpu"
	"github.com/jetsetilly/locutus/hardware/cpu/registers"
	"github.com/jetsetilly/locutus/hardware/memory/bus"
	"github.com/jetsetilly/locutus/logger"
	lua "github.com/yuin/gopher-lua"
)

// Error patterns.
const (
	LoadError = "script: load: %v"
	NoTick    = "script: no tick() function"
	TickError = "script: tick: %v"
)

// the name of the function called after every instruction
const tickFunction = "tick"

// Script is a Lua script that is called after every CPU instruction.
type Script struct {
	state *lua.LState
	tick  *lua.LFunction

	mc  *cpu.CPU
	mem bus.DebugBus

	// halt() has been called by the script
	halted bool

	// the error that stopped the script. once set the script is not called
	// again
	Err error
}

// NewScript is the preferred method of initialisation for the Script type.
// The script is not loaded until Load() or LoadString() is called.
func NewScript(mc *cpu.CPU, mem bus.DebugBus) *Script {
	scr := &Script{
		state: lua.NewState(),
		mc:    mc,
		mem:   mem,
	}

	bindings := map[string]lua.LGFunction{
		"peek":   scr.peek,
		"poke":   scr.poke,
		"reg":    scr.reg,
		"setreg": scr.setreg,
		"xreg":   scr.xreg,
		"pc":     scr.pc,
		"cycles": scr.cycles,
		"halt":   scr.halt,
		"log":    scr.log,
	}
	for name, fn := range bindings {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Load the script from a file. The script is run once to define the tick()
// function.
func (scr *Script) Load(filename string) error {
	if err := scr.state.DoFile(filename); err != nil {
		return curated.Errorf(LoadError, err)
	}
	logger.Logf(logger.Allow, "script", "loaded %s", filename)
	return scr.findTick()
}

// LoadString loads the script from a string.
func (scr *Script) LoadString(source string) error {
	if err := scr.state.DoString(source); err != nil {
		return curated.Errorf(LoadError, err)
	}
	return scr.findTick()
}

func (scr *Script) findTick() error {
	fn, ok := scr.state.GetGlobal(tickFunction).(*lua.LFunction)
	if !ok {
		return curated.Errorf(NoTick)
	}
	scr.tick = fn
	return nil
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.state.Close()
}

// Tick calls the tick() function of the script. It returns false if the
// emulation should stop. Tick satisfies the cpu.InstructionTick type.
func (scr *Script) Tick(mc *cpu.CPU) bool {
	if scr.Err != nil || scr.tick == nil {
		return false
	}

	scr.mc = mc

	err := scr.state.CallByParam(lua.P{
		Fn:      scr.tick,
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		scr.Err = curated.Errorf(TickError, err)
		logger.Log(logger.Allow, "script", scr.Err)
		return false
	}

	ret := scr.state.Get(-1)
	scr.state.Pop(1)

	if scr.halted {
		scr.halted = false
		return false
	}

	return ret == lua.LNil || lua.LVAsBool(ret)
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%d)", v))
	}
	return uint16(v)
}

func checkRegister(L *lua.LState, n int, num int) int {
	v := L.CheckInt(n)
	if v < 0 || v >= num {
		L.ArgError(n, fmt.Sprintf("no such register (%d)", v))
	}
	return v
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mem.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := checkAddress(L, 1)
	scr.mem.Poke(addr, uint16(L.CheckInt(2)))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	r := checkRegister(L, 1, len(scr.mc.Reg.R))
	L.Push(lua.LNumber(scr.mc.Reg.R[r]))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	r := checkRegister(L, 1, len(scr.mc.Reg.R))
	scr.mc.Reg.R[r] = uint16(L.CheckInt(2))
	return 0
}

func (scr *Script) xreg(L *lua.LState) int {
	r := checkRegister(L, 1, registers.NumExtended)
	L.Push(lua.LNumber(scr.mc.Reg.X[r]))
	return 1
}

func (scr *Script) pc(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mc.Reg.R[registers.PC]))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mc.Cycles))
	return 1
}

func (scr *Script) halt(_ *lua.LState) int {
	scr.halted = true
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
