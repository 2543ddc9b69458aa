/*
 * lex.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package asl

import (
	"fmt"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemOpen
	itemClose
	itemWord
	itemNumber
)

const (
	eof        = 0
	openParen  = '('
	closeParen = ')'
	minus      = '-'
)

type stateFn func(lx *lexer) stateFn

type lexer struct {
	input string
	start int
	pos   int
	width int
	state stateFn
	items chan item
}

type item struct {
	typ itemType
	val string
	pos int //byte offset of the item in the input
}

func (lx *lexer) nextItem() item {
	for {
		select {
		case item := <-lx.items:
			return item
		default:
			if lx.state == nil {
				return item{itemEOF, "", len(lx.input)}
			}
			lx.state = lx.state(lx)
		}
	}
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		state: lexAny,
		items: make(chan item, 2),
	}
}

func (lx *lexer) current() string {
	return lx.input[lx.start:lx.pos]
}

func (lx *lexer) emit(typ itemType) {
	lx.items <- item{typ, lx.current(), lx.start}
	lx.start = lx.pos
}

func (lx *lexer) next() (r rune) {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, lx.width = utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += lx.width
	return r
}

// ignore skips over the pending input before this point.
func (lx *lexer) ignore() {
	lx.start = lx.pos
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
}

// peek returns but does not consume the next rune in the input.
func (lx *lexer) peek() rune {
	r := lx.next()
	lx.backup()
	return r
}

// errorf stops all lexing by emitting an error and returning `nil`.
func (lx *lexer) errorf(format string, values ...interface{}) stateFn {
	lx.items <- item{
		itemError,
		fmt.Sprintf(format, values...),
		lx.start,
	}
	return nil
}

func lexAny(lx *lexer) stateFn {
	r := lx.next()
	if isBlank(r) {
		lx.ignore()
		return lexAny
	}
	switch {
	case r == eof:
		if lx.width != 0 {
			//a literal NUL in the input
			return lx.errorf("unexpected character %q", r)
		}
		lx.emit(itemEOF)
		return nil
	case r == openParen:
		lx.emit(itemOpen)
		return lexAny
	case r == closeParen:
		lx.emit(itemClose)
		return lexAny
	case r == minus:
		if !isDigit(lx.peek()) {
			return lx.errorf("'-' must be followed by a number")
		}
		return lexNumber
	case isAlnum(r):
		return lexWord
	}
	return lx.errorf("unexpected character %q", r)
}

// lexWord consumes a run of letters and digits. A run of digits
// only is a number.
func lexWord(lx *lexer) stateFn {
	digits := true
	lx.backup()
	for r := lx.next(); isAlnum(r); r = lx.next() {
		if !isDigit(r) {
			digits = false
		}
	}
	lx.backup()
	if digits {
		lx.emit(itemNumber)
	} else {
		lx.emit(itemWord)
	}
	return lexAny
}

// lexNumber consumes the digits of a negative number, after the minus sign.
func lexNumber(lx *lexer) stateFn {
	for r := lx.next(); isDigit(r); r = lx.next() {
	}
	lx.backup()
	if isAlnum(lx.peek()) {
		return lx.errorf("malformed number %q", lx.current()+string(lx.peek()))
	}
	lx.emit(itemNumber)
	return lexAny
}

func isBlank(r rune) bool {
	return r == '\t' || r == ' ' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlnum(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func (itype itemType) String() string {
	switch itype {
	case itemError:
		return "Error"
	case itemEOF:
		return "EOF"
	case itemOpen:
		return "("
	case itemClose:
		return ")"
	case itemWord:
		return "Word"
	case itemNumber:
		return "Number"
	}
	panic(fmt.Sprintf("BUG: Unknown type '%d'.", int(itype)))
}

func (item item) String() string {
	return fmt.Sprintf("(%s, %s)", item.typ.String(), item.val)
}
