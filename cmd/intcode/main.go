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

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/icvm/intcode/asm"
	"github.com/icvm/intcode/vm"
)

// cellList accumulates -in flag values; each occurrence may hold one value
// or a comma separated list.
type cellList []vm.Cell

func (l *cellList) String() string { return "" }
func (l *cellList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return err
		}
		*l = append(*l, vm.Cell(v))
	}
	return nil
}
func (l *cellList) Get() interface{} { return *l }

var (
	noRaw bool
	debug bool
	dump  bool
	ascii bool
	list  bool
)

func atExit(m *vm.Machine, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if m != nil {
		fmt.Fprintf(os.Stderr, "PC: %v, status: %v, relative base: %v\n", m.PC, m.Status(), m.RelBase())
	}
	os.Exit(1)
}

func runBatch(m *vm.Machine, target int) error {
	var out []vm.Cell
	var v vm.Cell
	if target >= 0 {
		v = m.RunTarget(target)
		out = m.Output()
	} else {
		out = m.Run()
	}
	if m.Yielded() {
		return errors.New("program is blocked waiting for input, seed values with -in")
	}
	for _, o := range out {
		fmt.Println(o)
	}
	if target >= 0 {
		fmt.Println(v)
	}
	return nil
}

func main() {
	var err error
	var m *vm.Machine

	var inputs cellList
	var fileName = flag.String("program", "program.ic", "load the Intcode program from file `filename`")
	var noun = flag.Int("noun", -1, "store `noun` in memory cell 1 before running")
	var verb = flag.Int("verb", -1, "store `verb` in memory cell 2 before running")
	var target = flag.Int("target", -1, "print the value left at memory `address` when the program stops")
	flag.Var(&inputs, "in", "seed input `values` (comma separated, can be specified multiple times)")
	flag.BoolVar(&ascii, "ascii", false, "run an interactive ASCII console")
	flag.BoolVar(&noRaw, "noraw", false, "disable raw terminal IO in ASCII mode")
	flag.BoolVar(&list, "list", false, "disassemble the program and exit")
	flag.BoolVar(&dump, "dump", false, "dump memory upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	// report errors, catch panics from malformed programs
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("%v", e)
		}
		atExit(m, err)
	}()

	var mem []vm.Cell
	mem, err = vm.Load(*fileName)
	if err != nil {
		return
	}

	if list {
		err = asm.DisassembleAll(mem, 0, os.Stdout)
		return
	}

	var opts []vm.Option
	if len(inputs) > 0 {
		opts = append(opts, vm.Input(inputs...))
	}
	if *noun >= 0 || *verb >= 0 {
		if *noun < 0 || *verb < 0 {
			err = errors.New("-noun and -verb must be given together")
			return
		}
		opts = append(opts, vm.NounVerb(vm.Cell(*noun), vm.Cell(*verb)))
	}

	m, err = vm.New(mem, opts...)
	if err != nil {
		return
	}

	if ascii {
		err = runConsole(m, !noRaw)
	} else {
		err = runBatch(m, *target)
	}
	if err == nil && dump {
		err = dumpMem(m.Mem, os.Stdout)
	}
}
