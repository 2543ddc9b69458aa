/*
 * lex_test.go, part of mogura.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func lexAll(input string) []item {
	lx := lex(input)
	var items []item
	for {
		it := lx.nextItem()
		items = append(items, it)
		if it.typ == itemEOF || it.typ == itemError {
			return items
		}
	}
}

func types(items []item) []itemType {
	ret := make([]itemType, len(items))
	for i, v := range items {
		ret[i] = v.typ
	}
	return ret
}

func TestLexer(t *testing.T) {
	t.Run("Words and numbers", func(t *testing.T) {
		items := lexAll("resname ALA 1HB 12 -3")
		assert.Equal(t, []itemType{itemWord, itemWord, itemWord, itemNumber, itemNumber, itemEOF}, types(items))
		assert.Equal(t, "1HB", items[2].val)
		assert.Equal(t, "-3", items[4].val)
		assert.Equal(t, 8, items[1].pos)
	})

	t.Run("Parentheses need no blanks", func(t *testing.T) {
		items := lexAll("(protein)or(water)")
		assert.Equal(t, []itemType{itemOpen, itemWord, itemClose, itemWord, itemOpen, itemWord, itemClose, itemEOF}, types(items))
	})

	t.Run("Blanks", func(t *testing.T) {
		items := lexAll(" \t\n all \r\n")
		assert.Equal(t, []itemType{itemWord, itemEOF}, types(items))
		assert.Equal(t, "all", items[0].val)
	})

	t.Run("Errors", func(t *testing.T) {
		for _, in := range []string{"resname AL$", "index - 3", "resid -3a", "name O5'", "all\x00", "\xff"} {
			items := lexAll(in)
			assert.Equal(t, itemError, items[len(items)-1].typ, in)
		}
	})

	t.Run("EOF is sticky", func(t *testing.T) {
		lx := lex("all")
		lx.nextItem()
		assert.Equal(t, itemEOF, lx.nextItem().typ)
		assert.Equal(t, itemEOF, lx.nextItem().typ)
	})
}
