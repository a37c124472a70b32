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

// Status describes the run state of a Machine.
type Status int

// Machine run states. Halted is absorbing: once a machine halts, input is
// discarded and further runs leave it halted. Yielded is transient: the
// machine is suspended on an empty input queue and AddInput transitions it
// back to Running.
const (
	Running Status = iota
	Yielded
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Yielded:
		return "yielded"
	case Halted:
		return "halted"
	}
	return "unknown"
}
