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
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/icvm/intcode/vm"
)

// runConsole drives an interactive session over the machine's yield
// protocol: run until the program blocks on input, print what it wrote,
// feed it one byte, repeat. Output cells in ASCII range are written as
// characters, anything else prints as a decimal value on its own line.
func runConsole(m *vm.Machine, raw bool) error {
	if raw {
		if tearDown, err := setRawIO(); err == nil {
			defer tearDown()
		}
	}

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		for _, v := range m.Run() {
			if v >= 0 && v < 128 {
				out.WriteByte(byte(v))
			} else {
				fmt.Fprintf(out, "%d\n", v)
			}
		}
		out.Flush()
		if m.Halted() {
			return nil
		}
		b, err := in.ReadByte()
		if err != nil {
			return errors.Wrap(err, "console input")
		}
		switch b {
		case 4: // CTRL-D, raw mode sends it through
			return nil
		case '\r': // raw mode sends CR for the return key
			b = '\n'
		}
		m.AddInput(vm.Cell(b))
	}
}
