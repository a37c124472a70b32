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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icvm/intcode/vm"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	mem, err := vm.Parse(strings.NewReader("109,1,204,-1,99\n"))
	assert.NoError(err)
	assert.Equal([]vm.Cell{109, 1, 204, -1, 99}, mem)

	mem, err = vm.Parse(strings.NewReader("  1, 2 ,3 "))
	assert.NoError(err)
	assert.Equal([]vm.Cell{1, 2, 3}, mem)

	_, err = vm.Parse(strings.NewReader("1,x,3"))
	assert.Error(err)

	_, err = vm.Parse(strings.NewReader(""))
	assert.Error(err)
}

func TestSaveLoad(t *testing.T) {
	assert := assert.New(t)
	name := filepath.Join(t.TempDir(), "program.ic")

	mem := []vm.Cell{3, 0, 4, 0, 99}
	assert.NoError(vm.Save(name, mem))

	got, err := vm.Load(name)
	assert.NoError(err)
	assert.Equal(mem, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := vm.Load(filepath.Join(t.TempDir(), "nope.ic"))
	assert.Error(t, err)
}
