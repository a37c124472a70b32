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

// Package asm provides an assembler and disassembler for Intcode.
//
// Writing instruction words with stacked mode digits by hand gets old
// fast; the assembler computes them from per-operand markers instead. The
// source format is free-form, whitespace separated and case sensitive:
//
//	( comments go between parentheses )
//		in ch            ( read one value into ch )
//		eq ch #8 ch      ( ch = 1 if ch == 8 )
//		out ch
//		halt
//	:ch 0
//
// Mnemonics and operand counts:
//
//	add a b dest    mul a b dest    lt a b dest    eq a b dest
//	jnz a addr      jz a addr
//	in dest         out a           arb a
//	halt
//
// A bare operand is positional (an address), a # prefix marks it
// immediate (a literal), and a + prefix marks it relative to the base
// register. Mode markers on a destination operand are accepted but
// pointless: the machine treats immediate destinations as positional.
//
// Labels are defined with :name and used by name; a use may precede the
// definition. Values outside an instruction are emitted as raw data cells.
// Two directives are recognized: ".org n" moves the assembly position to
// cell n, and ".equ name n" defines a named constant.
//
// The disassembler is the inverse mapping. It cannot tell code from data,
// so cells whose low digits happen to form an opcode disassemble as
// instructions; everything else prints as a bare value.
package asm
