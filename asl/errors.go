/*
 * errors.go, part of mogura.
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

import "fmt"

// ParseError is returned for any query that is not valid. It implements chem.Error.
type ParseError struct {
	Query string
	Pos   int //byte offset in Query where the problem was found
	Msg   string
	deco  []string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("selection %q: %s (at position %d)", err.Query, err.Msg, err.Pos)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
