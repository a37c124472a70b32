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

package vm_test

import (
	"fmt"

	"github.com/icvm/intcode/vm"
)

// Shows the cooperative input protocol: run, feed input, resume.
func ExampleMachine_Run() {
	// This program echoes its single input value.
	m, err := vm.New([]vm.Cell{3, 0, 4, 0, 99})
	if err != nil {
		panic(err)
	}

	out := m.Run() // no input yet: the machine suspends
	fmt.Println(m.Status(), out)

	m.AddInput(42)
	out = m.Run() // resumes at the blocked instruction
	fmt.Println(m.Status(), out)

	// Output:
	// yielded []
	// halted [42]
}

// Shows the noun/verb convention for programs that leave their result in
// memory instead of writing output.
func ExampleMachine_RunTarget() {
	m, err := vm.New([]vm.Cell{1, 0, 0, 0, 99}, vm.NounVerb(4, 4))
	if err != nil {
		panic(err)
	}
	fmt.Println(m.RunTarget(0))

	// Output:
	// 198
}
