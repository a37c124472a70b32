// This file is part of intcode - https://github.com/icvm/intcode
//
// Copyright 2019 The intcode Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "github.com/pkg/errors"

// Intcode opcodes, the low two decimal digits of an instruction word.
const (
	OpAdd Cell = iota + 1
	OpMul
	OpInput
	OpOutput
	OpJumpNZ
	OpJumpZ
	OpLess
	OpEqual
	OpRelBase
	OpHalt Cell = 99
)

// mode is the addressing mode of a single operand.
type mode int

const (
	positional mode = iota // operand is an address
	immediate              // operand is a literal value
	relative               // operand is an address offset by the relative base
)

// parseMode maps a single mode digit to its addressing mode. Unrecognized
// digits clamp to positional rather than failing; some programs in the wild
// rely on this.
func parseMode(d Cell) mode {
	switch d {
	case 1:
		return immediate
	case 2:
		return relative
	default:
		return positional
	}
}

// Operand mode digits are stacked above the opcode: hundreds for the first
// parameter, thousands for the second, ten-thousands for the third.
func (m *Machine) mode1() mode {
	return parseMode(m.Mem[m.PC] / 100 % 10)
}

func (m *Machine) mode2() (m2, m1 mode) {
	return parseMode(m.Mem[m.PC] / 1000 % 10), m.mode1()
}

func (m *Machine) mode3() (m3, m2, m1 mode) {
	m2, m1 = m.mode2()
	return parseMode(m.Mem[m.PC] / 10000 % 10), m2, m1
}

// cursor reads the operand slots of the instruction at the machine's
// program counter. Every arg or dest call consumes exactly one slot,
// advancing the PC, so operands must be fetched in instruction order:
// first, second, then destination. Destination resolution for immediate
// mode depends on this ordering.
type cursor struct {
	m *Machine
}

// arg consumes one operand slot and returns its value per the addressing
// mode. The tape is grown as needed, so a resolved address is always
// readable.
func (c cursor) arg(md mode) Cell {
	m := c.m
	m.PC++
	var addr int
	switch md {
	case positional:
		addr = int(m.at(m.PC))
	case immediate:
		addr = m.PC
	case relative:
		addr = int(m.relBase + m.at(m.PC))
	}
	return m.at(addr)
}

// dest consumes one operand slot and returns the address it designates.
// Output parameters are never truly immediate: positional and immediate
// both resolve to the literal operand value.
func (c cursor) dest(md mode) int {
	if md == relative {
		return int(c.m.relBase + c.arg(immediate))
	}
	return int(c.arg(immediate))
}

// Run executes the machine until it halts or yields on an empty input
// queue, and returns the output accumulated by this run. The output buffer
// is cleared on entry, so the result reflects only this invocation.
//
// Executing an opcode outside the defined set panics: it indicates a
// malformed program or an addressing bug, not a runtime condition the
// caller could recover from.
func (m *Machine) Run() []Cell {
	m.RunTarget(0)
	return m.Output()
}

// RunTarget is Run for programs whose result is left in a memory cell
// rather than written to output: it drives the same loop and returns the
// value at the target address at the moment the machine stops.
func (m *Machine) RunTarget(target int) Cell {
	m.status = Running
	m.output = m.output[:0]
	m.insCount = 0
	for {
		c := cursor{m}
		switch op := m.at(m.PC) % 100; op {
		case OpAdd:
			m3, m2, m1 := m.mode3()
			a := c.arg(m1)
			b := c.arg(m2)
			m.store(c.dest(m3), a+b)
			m.PC++
		case OpMul:
			m3, m2, m1 := m.mode3()
			a := c.arg(m1)
			b := c.arg(m2)
			m.store(c.dest(m3), a*b)
			m.PC++
		case OpInput:
			dest := c.dest(m.mode1())
			if len(m.input) == 0 {
				// roll back onto the opcode word so that the same
				// instruction re-executes on resume
				m.status = Yielded
				m.PC--
				break
			}
			m.store(dest, m.input[0])
			m.input = m.input[1:]
			m.PC++
		case OpOutput:
			m.output = append(m.output, c.arg(m.mode1()))
			m.PC++
		case OpJumpNZ:
			m2, m1 := m.mode2()
			a := c.arg(m1)
			b := c.arg(m2)
			if a != 0 {
				m.PC = int(b)
			} else {
				m.PC++
			}
		case OpJumpZ:
			m2, m1 := m.mode2()
			a := c.arg(m1)
			b := c.arg(m2)
			if a == 0 {
				m.PC = int(b)
			} else {
				m.PC++
			}
		case OpLess:
			m3, m2, m1 := m.mode3()
			a := c.arg(m1)
			b := c.arg(m2)
			var r Cell
			if a < b {
				r = 1
			}
			m.store(c.dest(m3), r)
			m.PC++
		case OpEqual:
			m3, m2, m1 := m.mode3()
			a := c.arg(m1)
			b := c.arg(m2)
			var r Cell
			if a == b {
				r = 1
			}
			m.store(c.dest(m3), r)
			m.PC++
		case OpRelBase:
			m.relBase += c.arg(m.mode1())
			m.PC++
		case OpHalt:
			m.status = Halted
		default:
			panic(errors.Errorf("unknown opcode %d at position %d", op, m.PC))
		}
		m.insCount++
		if m.status != Running {
			return m.at(target)
		}
	}
}
