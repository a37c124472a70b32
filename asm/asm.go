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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/icvm/intcode/internal/ici"
	"github.com/icvm/intcode/vm"
)

type opInfo struct {
	name string
	code vm.Cell
	args int
}

var ops = [...]opInfo{
	{"add", vm.OpAdd, 3},
	{"mul", vm.OpMul, 3},
	{"in", vm.OpInput, 1},
	{"out", vm.OpOutput, 1},
	{"jnz", vm.OpJumpNZ, 2},
	{"jz", vm.OpJumpZ, 2},
	{"lt", vm.OpLess, 3},
	{"eq", vm.OpEqual, 3},
	{"arb", vm.OpRelBase, 1},
	{"halt", vm.OpHalt, 0},
}

var (
	opIndex  = make(map[string]*opInfo)
	opByCode = make(map[vm.Cell]*opInfo)
)

func init() {
	for i := range ops {
		opIndex[ops[i].name] = &ops[i]
		opByCode[ops[i].code] = &ops[i]
	}
}

// Mode digit weights for the 1st, 2nd and 3rd operand.
var pow10 = [...]vm.Cell{100, 1000, 10000}

var modeMarks = [...]string{"", "#", "+"}

// Assemble compiles assembly read from the supplied io.Reader and returns
// the resulting memory image and error if any.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) ([]vm.Cell, error) {
	p := newParser()
	if err := p.parse(name, r); err != nil {
		return nil, err
	}
	return p.img[:p.end], nil
}

// Disassemble writes a disassembly of the cells in the given slice at
// position pc to the specified io.Writer and returns the position of the
// next cell and any write error. Cells that do not decode to a known
// opcode are written as bare values.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ici.ErrWriter)
	if ew == nil {
		ew = ici.NewErrWriter(w)
	}

	word := mem[pc]
	info := opByCode[word%100]
	if word < 0 || info == nil {
		io.WriteString(ew, strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, info.name)
	pc++
	for k := 0; k < info.args; k++ {
		ew.Write([]byte{' '})
		if pc >= len(mem) {
			io.WriteString(ew, "???")
			return pc, ew.Err
		}
		if d := word / pow10[k] % 10; d == 1 || d == 2 {
			io.WriteString(ew, modeMarks[d])
		}
		io.WriteString(ew, strconv.FormatInt(int64(mem[pc]), 10))
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of
// the first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
