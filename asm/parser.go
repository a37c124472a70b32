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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/icvm/intcode/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	img    []vm.Cell
	pc     int
	end    int // high-water mark of written cells
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	err    error

	// operand list of the instruction being assembled
	opPC     int // cell holding the opcode word, -1 outside an instruction
	argsLeft int
	argIdx   int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	p.opPC = -1
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.img) {
		p.img = append(p.img, make([]vm.Cell, 1024)...)
	}
	p.img[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Pos(), -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Pos(), p.pc})
}

func scanError(s *scanner.Scanner, msg string) error {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return fmt.Errorf("%s: %s", pos, msg)
}

// parse does the parsing and compiling.
func (p *parser) parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.err = scanError(s, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.err = scanError(&p.s, "unexpected character "+strconv.QuoteRune(tok))
			break
		}
		s := p.s.TokenText()
		if s == "(" {
			// skip comments
			for ; p.err == nil && tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}
		p.token(s)
	}
	if p.err != nil {
		return p.err
	}
	if p.argsLeft > 0 {
		return scanError(&p.s, "missing operand at end of input")
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			return fmt.Errorf("missing label definition for %s, first use here: %s", n, l.uses[0].pos)
		}
		for _, u := range l.uses {
			p.img[u.address] = vm.Cell(l.address)
		}
	}
	return nil
}

func (p *parser) token(s string) {
	switch s[0] {
	case ':':
		if p.argsLeft > 0 {
			p.err = scanError(&p.s, "unexpected label definition as operand: "+s)
			return
		}
		p.defineLabel(s[1:])
	case '.':
		p.directive(s)
	default:
		p.operand(s)
	}
}

func (p *parser) defineLabel(n string) {
	if len(n) == 0 {
		p.err = scanError(&p.s, "empty label name")
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.err = scanError(&p.s, "label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.err = scanError(&p.s, "label redefinition: "+n+", previous definition here: "+l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Pos()
		return
	}
	p.labels[n] = &label{
		labelSite{p.s.Pos(), p.pc},
		nil,
	}
}

func (p *parser) directive(s string) {
	if p.argsLeft > 0 {
		p.err = scanError(&p.s, "unexpected directive as operand: "+s)
		return
	}
	switch s {
	case ".org":
		v, ok := p.intArg(s)
		if !ok {
			return
		}
		if v < 0 {
			p.err = scanError(&p.s, ".org: negative address")
			return
		}
		p.pc = int(v)
	case ".equ":
		if t := p.s.Scan(); t != scanner.Ident {
			p.err = scanError(&p.s, ".equ: expected identifier, got "+p.s.TokenText())
			return
		}
		n := p.s.TokenText()
		if l, ok := p.labels[n]; ok {
			p.err = scanError(&p.s, ".equ: redefinition of "+n+", previously defined or used as a label here: "+l.pos.String())
			return
		}
		pos := p.s.Pos()
		v, ok := p.intArg(s)
		if !ok {
			return
		}
		p.consts[n] = labelSite{pos, int(v)}
	default:
		p.err = scanError(&p.s, "unknown dot directive: "+s)
	}
}

// intArg scans the directive's value argument: an integer literal or a
// previously defined constant.
func (p *parser) intArg(dir string) (int64, bool) {
	if t := p.s.Scan(); t != scanner.Ident {
		p.err = scanError(&p.s, dir+": expected value, got "+p.s.TokenText())
		return 0, false
	}
	s := p.s.TokenText()
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v, true
	}
	if c, ok := p.consts[s]; ok {
		return int64(c.address), true
	}
	p.err = scanError(&p.s, dir+": expected value, got "+s)
	return 0, false
}

// operand handles everything that is not a label definition or a
// directive: mnemonics, operand values and raw data cells.
func (p *parser) operand(s string) {
	if op, ok := opIndex[s]; ok {
		if p.argsLeft > 0 {
			p.err = scanError(&p.s, "unexpected opcode as operand: "+s)
			return
		}
		p.opPC = p.pc
		p.write(op.code)
		p.argsLeft = op.args
		p.argIdx = 0
		return
	}

	var md vm.Cell
	switch s[0] {
	case '#':
		md, s = 1, s[1:]
	case '+':
		md, s = 2, s[1:]
	}
	if md != 0 {
		if p.argsLeft == 0 {
			p.err = scanError(&p.s, "mode marker outside an instruction: "+modeMarks[md]+s)
			return
		}
		if len(s) == 0 {
			p.err = scanError(&p.s, "empty operand after mode marker")
			return
		}
	}

	// operand value: integer, character, constant or label
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		p.emit(vm.Cell(v), md)
		return
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, _, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil {
			p.err = scanError(&p.s, err.Error())
			return
		}
		p.emit(vm.Cell(r), md)
		return
	}
	if c, ok := p.consts[s]; ok {
		p.emit(vm.Cell(c.address), md)
		return
	}
	p.useLabel(s)
	p.emit(0, md)
}

// emit writes one operand or raw data cell and folds the operand's mode
// digit into the pending opcode word.
func (p *parser) emit(v, md vm.Cell) {
	p.write(v)
	if p.argsLeft == 0 {
		return
	}
	if md != 0 {
		p.img[p.opPC] += md * pow10[p.argIdx]
	}
	p.argIdx++
	p.argsLeft--
}
