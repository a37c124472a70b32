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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icvm/intcode/asm"
	"github.com/icvm/intcode/vm"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		code string
		img  []vm.Cell
	}{
		{"halt", "halt", []vm.Cell{99}},
		{"modes", "mul 4 #3 4 33", []vm.Cell{1002, 4, 3, 4, 33}},
		{"relative", "arb #1 out +-1 halt", []vm.Cell{109, 1, 204, -1, 99}},
		{"labels", "in x eq x #8 x out x halt :x 0", []vm.Cell{3, 9, 1008, 9, 8, 9, 4, 9, 99, 0}},
		{"forward-org", "jz #0 end halt .org 8 :end out #1 halt",
			[]vm.Cell{106, 0, 8, 99, 0, 0, 0, 0, 104, 1, 99}},
		{"equ", ".equ eight 8 out #eight halt", []vm.Cell{104, 8, 99}},
		{"char", "out #'A' halt", []vm.Cell{104, 65, 99}},
		{"comment", "( nothing to see ) halt", []vm.Cell{99}},
	}
	for _, test := range tests {
		img, err := asm.Assemble(test.name, strings.NewReader(test.code))
		if assert.NoError(t, err, test.name) {
			assert.Equal(t, test.img, img, test.name)
		}
	}
}

// check some errors. We're not checking the messages, rather that the
// parser rejects the construct at all.
func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"unknown-directive", ".bogus 1"},
		{"opcode-as-operand", "add halt 1 2"},
		{"label-in-instruction", "out :x"},
		{"directive-in-instruction", "out .org 5"},
		{"missing-operand", "add 1 2"},
		{"missing-label", "jz #0 nowhere halt"},
		{"label-redefinition", ":x halt :x"},
		{"marker-outside-instruction", "#5"},
		{"empty-marker", "out # halt"},
		{"equ-missing-value", ".equ x"},
		{"org-negative", ".org -1"},
	}
	for _, test := range tests {
		_, err := asm.Assemble(test.name, strings.NewReader(test.code))
		assert.Error(t, err, test.name)
	}
}

func TestAssembleRun(t *testing.T) {
	code := `
	( sum two inputs )
		in a
		in b
		add a b a
		out a
		halt
	:a 0
	:b 0
`
	img, err := asm.Assemble("sum", strings.NewReader(code))
	assert.NoError(t, err)

	m, err := vm.New(img, vm.Input(2, 3))
	assert.NoError(t, err)
	assert.Equal(t, []vm.Cell{5}, m.Run())
}

func TestDisassemble(t *testing.T) {
	var b bytes.Buffer
	err := asm.DisassembleAll([]vm.Cell{1002, 4, 3, 4, 33}, 0, &b)
	assert.NoError(t, err)
	want := "         0\tmul 4 #3 4\n" +
		"         4\t33\n"
	assert.Equal(t, want, b.String())
}
