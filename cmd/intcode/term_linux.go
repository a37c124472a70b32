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
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// setRawIO switches the terminal to raw IO and returns a function that
// restores the settings as they were before.
func setRawIO() (func(), error) {
	fd := int(os.Stdin.Fd())
	tios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, errors.Wrap(err, "tcgetattr failed")
	}
	a := *tios
	a.Iflag &^= unix.IGNBRK | unix.ISTRIP | unix.IXON | unix.IXOFF
	a.Iflag |= unix.BRKINT | unix.IGNPAR
	a.Lflag &^= unix.ICANON | unix.IEXTEN | unix.ECHO
	a.Cc[unix.VMIN] = 1
	a.Cc[unix.VTIME] = 0
	if err = unix.IoctlSetTermios(fd, unix.TCSETS, &a); err != nil {
		// well, try to restore as it was if it errors
		unix.IoctlSetTermios(fd, unix.TCSETS, tios)
		return nil, errors.Wrap(err, "tcsetattr failed")
	}
	return func() {
		unix.IoctlSetTermios(fd, unix.TCSETS, tios)
	}, nil
}
