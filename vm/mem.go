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

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// grow extends the tape so that addr is a valid index. New cells read as
// zero. The tape never shrinks.
func (m *Machine) grow(addr int) {
	if addr < len(m.Mem) {
		return
	}
	t := make([]Cell, 2*addr+1)
	copy(t, m.Mem)
	m.Mem = t
}

// at returns the value at addr, growing the tape as needed. Cells that
// were never written read as zero.
func (m *Machine) at(addr int) Cell {
	m.grow(addr)
	return m.Mem[addr]
}

// store writes v at addr, growing the tape as needed.
func (m *Machine) store(addr int, v Cell) {
	m.grow(addr)
	m.Mem[addr] = v
}

// Parse reads a program in its on-disk format, a comma separated list of
// decimal cell values, and returns the memory image. Whitespace around
// values and a trailing newline are tolerated.
func Parse(r io.Reader) ([]Cell, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	fields := strings.Split(strings.TrimSpace(string(b)), ",")
	mem := make([]Cell, 0, len(fields))
	for n, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Errorf("bad cell value %q at position %d", f, n)
		}
		mem = append(mem, Cell(v))
	}
	return mem, nil
}

// Load loads a program from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	mem, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "load %v", fileName)
	}
	return mem, nil
}

// Save writes a memory image to file fileName in the on-disk program
// format. The file is removed on error.
func Save(fileName string, mem []Cell) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		w.Flush()
		f.Close()
		if err != nil {
			os.Remove(fileName)
		}
	}()
	for n, v := range mem {
		if n > 0 {
			if err = w.WriteByte(','); err != nil {
				return errors.Wrap(err, "write failed")
			}
		}
		if _, err = w.WriteString(strconv.FormatInt(int64(v), 10)); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	err = w.WriteByte('\n')
	return errors.Wrap(err, "save failed")
}
