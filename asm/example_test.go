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

package asm_test

import (
	"fmt"
	"strings"

	"github.com/icvm/intcode/asm"
	"github.com/icvm/intcode/vm"
)

// Assembles a small program and runs it.
func ExampleAssemble() {
	src := `
	( add 2 and 3, print the result )
		add #2 #3 r
		out r
		halt
	:r 0
`
	img, err := asm.Assemble("example", strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	m, err := vm.New(img)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Run())

	// Output:
	// [5]
}
