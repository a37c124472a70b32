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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a flat, comma separated list of signed 64 bit
// integers executed against a growable memory tape. The low two decimal
// digits of an instruction word select the opcode; the higher digits select
// the addressing mode of each parameter (positional, immediate or relative
// to an adjustable base register).
//
// Machines are single threaded and fully synchronous. The one form of
// suspension is cooperative: an input instruction executed against an empty
// input queue returns control to the caller with the machine in the Yielded
// state. Supplying input with AddInput and calling Run again resumes at the
// exact instruction that blocked. This makes it easy to wire several
// machines together from the outside, feeding one machine's output into
// another's input queue; no such orchestration lives in this package.
//
// If you venture into hacking the VM code itself, be aware that the program
// counter is not incremented in a single place: each operand fetch advances
// it by exactly one slot, and destination resolution for immediate mode
// depends on that ordering. See the cursor type in core.go.
package vm
