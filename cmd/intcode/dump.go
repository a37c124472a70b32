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
	"io"
	"strconv"

	"github.com/icvm/intcode/internal/ici"
	"github.com/icvm/intcode/vm"
)

// dumpMem writes the machine memory to w in the comma separated program
// format, so a dump can be loaded and re-run.
func dumpMem(mem []vm.Cell, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for n, v := range mem {
		if n > 0 {
			ew.Write([]byte{','})
		}
		io.WriteString(ew, strconv.FormatInt(int64(v), 10))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
