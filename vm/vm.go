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

// Cell is the raw type stored in a memory location.
type Cell int64

// Machine represents a single Intcode machine instance.
//
// A Machine owns its memory tape exclusively. The slice handed to New must
// not be aliased by the caller afterwards: the tape grows on demand and may
// be reallocated by any run.
type Machine struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Mem      []Cell // Memory tape
	relBase  Cell
	input    []Cell
	output   []Cell
	status   Status
	insCount int64
}

// Option interface
type Option func(*Machine) error

// Cell0 sets memory cell 0 to the given value before the first run. Some
// programs read their operating mode from cell 0.
func Cell0(v Cell) Option {
	return func(m *Machine) error { m.store(0, v); return nil }
}

// NounVerb sets memory cells 1 and 2 to the given noun and verb values.
// This is the parameter convention used by programs whose result is read
// back from cell 0 with RunTarget.
func NounVerb(noun, verb Cell) Option {
	return func(m *Machine) error {
		m.store(1, noun)
		m.store(2, verb)
		return nil
	}
}

// Input seeds the given values into the machine's input queue, in order.
func Input(vs ...Cell) Option {
	return func(m *Machine) error { m.AddInput(vs...); return nil }
}

// New creates a new Intcode Machine.
//
// The mem parameter is the initial memory image, usually obtained from Load
// or Parse. The machine starts with the program counter and relative base
// at zero, empty input and output, and status Running.
//
// Options will be set by calling SetOptions.
func New(mem []Cell, opts ...Option) (*Machine, error) {
	m := &Machine{Mem: mem}
	if err := m.SetOptions(opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// SetOptions sets the provided options.
func (m *Machine) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return err
		}
	}
	return nil
}

// AddInput appends the given values to the input queue. A Yielded machine
// transitions back to Running and the next run will retry the blocked input
// instruction. A Halted machine never resumes: its input is discarded.
func (m *Machine) AddInput(vs ...Cell) {
	if m.status == Halted {
		return
	}
	m.status = Running
	m.input = append(m.input, vs...)
}

// Status returns the machine's run status.
func (m *Machine) Status() Status { return m.status }

// Halted reports whether the machine has executed a halt instruction.
func (m *Machine) Halted() bool { return m.status == Halted }

// Yielded reports whether the machine is suspended on an empty input queue.
func (m *Machine) Yielded() bool { return m.status == Yielded }

// Output returns the values written by output instructions during the most
// recent run. The returned slice is a copy; it is not invalidated by
// further runs.
func (m *Machine) Output() []Cell {
	out := make([]Cell, len(m.output))
	copy(out, m.output)
	return out
}

// RelBase returns the current value of the relative base register.
func (m *Machine) RelBase() Cell { return m.relBase }

// InstructionCount returns the number of instructions executed by the most
// recent run.
func (m *Machine) InstructionCount() int64 { return m.insCount }
