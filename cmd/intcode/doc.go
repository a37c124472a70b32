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

// The intcode command line tool runs Intcode programs using the package
// github.com/icvm/intcode/vm.
//
// Usage:
//
//	-ascii
//		  run an interactive ASCII console
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump memory upon exit
//	-in values
//		  seed input values (comma separated, can be specified multiple times)
//	-list
//		  disassemble the program and exit
//	-noraw
//		  disable raw terminal IO in ASCII mode
//	-noun noun
//		  store noun in memory cell 1 before running
//	-program filename
//		  load the Intcode program from file filename (default "program.ic")
//	-target address
//		  print the value left at memory address when the program stops
//	-verb verb
//		  store verb in memory cell 2 before running
//
// In the default batch mode, the tool runs the program to completion with
// the inputs seeded by -in and prints each output value on its own line.
// A program that blocks on an empty input queue is reported as an error.
// With -target, the value left in the given memory cell is printed after
// the outputs; combined with -noun and -verb this covers the parameterized
// programs whose result is read back from cell 0.
//
// -ascii: runs programs that talk in ASCII interactively. Machine output
// is printed as characters (out of range values fall back to decimal) and
// whenever the machine yields, one byte of terminal input is fed to it.
// The terminal is switched to raw mode unless -noraw is given; CTRL-D
// ends the session.
//
// -list: prints a disassembly of the program instead of running it. Since
// code and data are not distinguishable in a memory image, data cells may
// decode as nonsense instructions; the listing is a debugging aid, not a
// faithful inverse of the assembler.
//
// -dump: after a successful run, writes the final memory image to stdout
// in the comma separated program format, so the result can be inspected
// or re-run.
package main
