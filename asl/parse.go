/*
 * parse.go, part of mogura.
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
	"strconv"
)

const (
	//largest number of values a "to" range can expand to.
	maxRange = 1 << 20
	//deepest parenthesis nesting accepted.
	maxDepth = 512
)

var reserved = map[string]bool{"and": true, "or": true, "not": true, "to": true}

type parser struct {
	lx     *lexer
	input  string
	peeked *item
	depth  int
}

// Parse compiles a query into a Selection. The whole input must be a valid query,
// otherwise a *ParseError is returned.
func Parse(query string) (Selection, error) {
	p := &parser{lx: lex(query), input: query}
	sel, err := p.or()
	if err != nil {
		return nil, err
	}
	it := p.next()
	switch it.typ {
	case itemEOF:
		return sel, nil
	case itemError:
		return nil, p.errorf(it, "%s", it.val)
	case itemClose:
		return nil, p.errorf(it, "unmatched ')'")
	}
	return nil, p.errorf(it, "unexpected %q, expected 'and', 'or' or end of query", it.val)
}

// MustParse is like Parse but panics on error. It is meant for
// selections hard-coded in programs.
func MustParse(query string) Selection {
	sel, err := Parse(query)
	if err != nil {
		panic(err.Error())
	}
	return sel
}

func (p *parser) next() item {
	if p.peeked != nil {
		it := *p.peeked
		p.peeked = nil
		return it
	}
	return p.lx.nextItem()
}

func (p *parser) peek() item {
	if p.peeked == nil {
		it := p.lx.nextItem()
		p.peeked = &it
	}
	return *p.peeked
}

// isWord returns true if it is the keyword w.
func isWord(it item, w string) bool {
	return it.typ == itemWord && it.val == w
}

func (p *parser) errorf(it item, format string, values ...interface{}) *ParseError {
	return &ParseError{Query: p.input, Pos: it.pos, Msg: fmt.Sprintf(format, values...), deco: []string{"Parse"}}
}

// or := and ("or" and)*
func (p *parser) or() (Selection, error) {
	first, err := p.and()
	if err != nil {
		return nil, err
	}
	ret := Or{first}
	for isWord(p.peek(), "or") {
		p.next()
		s, err := p.and()
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	if len(ret) == 1 {
		return first, nil
	}
	return ret, nil
}

// and := not ("and" not)*
func (p *parser) and() (Selection, error) {
	first, err := p.not()
	if err != nil {
		return nil, err
	}
	ret := And{first}
	for isWord(p.peek(), "and") {
		p.next()
		s, err := p.not()
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	if len(ret) == 1 {
		return first, nil
	}
	return ret, nil
}

// not := "not"* primary
func (p *parser) not() (Selection, error) {
	nots := 0
	for isWord(p.peek(), "not") {
		p.next()
		nots++
	}
	sel, err := p.primary()
	if err != nil {
		return nil, err
	}
	for ; nots > 0; nots-- {
		sel = Not{sel}
	}
	return sel, nil
}

// primary := "(" or ")" | predicate
func (p *parser) primary() (Selection, error) {
	it := p.next()
	switch it.typ {
	case itemError:
		return nil, p.errorf(it, "%s", it.val)
	case itemEOF:
		return nil, p.errorf(it, "unexpected end of query, expected a selection")
	case itemClose:
		return nil, p.errorf(it, "unexpected ')', expected a selection")
	case itemNumber:
		return nil, p.errorf(it, "unexpected number %s, expected a selection", it.val)
	case itemOpen:
		p.depth++
		if p.depth > maxDepth {
			return nil, p.errorf(it, "parentheses nested too deep")
		}
		sel, err := p.or()
		if err != nil {
			return nil, err
		}
		cl := p.next()
		switch cl.typ {
		case itemClose:
		case itemError:
			return nil, p.errorf(cl, "%s", cl.val)
		case itemEOF:
			return nil, p.errorf(it, "unterminated '('")
		default:
			return nil, p.errorf(cl, "unexpected %q, expected ')'", cl.val)
		}
		p.depth--
		return Braket{sel}, nil
	}
	return p.predicate(it)
}

func (p *parser) predicate(it item) (Selection, error) {
	switch it.val {
	case "all":
		return All{}, nil
	case "protein":
		return Protein{}, nil
	case "water":
		return Water{}, nil
	case "ion":
		return Ion{}, nil
	case "backbone":
		return Backbone{}, nil
	case "sidechain":
		return Sidechain{}, nil
	case "resname":
		names, err := p.idents(it)
		return ResName(names), err
	case "name":
		names, err := p.idents(it)
		return Name(names), err
	case "resid":
		n, err := p.numbers(it, true)
		return ResID(n), err
	case "index":
		n, err := p.numbers(it, false)
		return Index(n), err
	}
	if reserved[it.val] {
		return nil, p.errorf(it, "unexpected %q, expected a selection", it.val)
	}
	return nil, p.errorf(it, "unknown keyword %q", it.val)
}

// idents := ident+
// Identifiers are words or non-negative numbers, but not reserved words.
func (p *parser) idents(kw item) ([]string, error) {
	var ret []string
	for {
		it := p.peek()
		if it.typ == itemWord && reserved[it.val] {
			break
		}
		if it.typ == itemWord || (it.typ == itemNumber && it.val[0] != minus) {
			ret = append(ret, p.next().val)
			continue
		}
		break
	}
	if len(ret) == 0 {
		return nil, p.identErr(kw)
	}
	return ret, nil
}

func (p *parser) identErr(kw item) error {
	it := p.peek()
	switch {
	case it.typ == itemError:
		return p.errorf(it, "%s", it.val)
	case it.typ == itemWord:
		return p.errorf(it, "%q is a reserved word and can't be used after %s", it.val, kw.val)
	}
	return p.errorf(kw, "%s needs at least one name", kw.val)
}

// numbers := NUM "to" NUM | NUM+
func (p *parser) numbers(kw item, signed bool) ([]int, error) {
	first, err := p.number(kw, signed)
	if err != nil {
		return nil, err
	}
	if isWord(p.peek(), "to") {
		to := p.next()
		last, err := p.number(to, signed)
		if err != nil {
			return nil, err
		}
		if last < first {
			return nil, p.errorf(to, "reversed range %d to %d", first, last)
		}
		//last >= first, so the unsigned difference is the width even when
		//last-first would overflow an int.
		width := uint64(last) - uint64(first)
		if width >= maxRange {
			return nil, p.errorf(to, "range %d to %d is too large", first, last)
		}
		ret := make([]int, 0, int(width)+1)
		for k := 0; k <= int(width); k++ {
			ret = append(ret, first+k)
		}
		return ret, nil
	}
	ret := []int{first}
	for p.peek().typ == itemNumber {
		n, err := p.number(kw, signed)
		if err != nil {
			return nil, err
		}
		ret = append(ret, n)
	}
	return ret, nil
}

// number reads one number. after is the item before it, used in the messages.
func (p *parser) number(after item, signed bool) (int, error) {
	it := p.peek()
	switch it.typ {
	case itemNumber:
	case itemError:
		return 0, p.errorf(it, "%s", it.val)
	case itemEOF:
		return 0, p.errorf(it, "expected a number after %s", after.val)
	default:
		return 0, p.errorf(it, "expected a number after %s, got %q", after.val, it.val)
	}
	p.next()
	n, err := strconv.Atoi(it.val)
	if err != nil {
		return 0, p.errorf(it, "bad number %s", it.val)
	}
	if n < 0 && !signed {
		return 0, p.errorf(it, "negative number %d not allowed here", n)
	}
	return n, nil
}
