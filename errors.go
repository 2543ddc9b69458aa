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

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes for LoadError. Use errors.Is to test for them.
var (
	ErrUnsupportedExtension = errors.New("extension not supported")
	ErrMissingExtension     = errors.New("file has no extension")
	ErrMalformed            = errors.New("malformed record")
)

// CError is the general error type of the chem package.
type CError struct {
	msg  string
	deco []string
}

// NewError returns a CError with the message msg, decorated with the caller name.
func NewError(msg, caller string) *CError {
	return &CError{msg: msg, deco: []string{caller}}
}

func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// LoadError is returned when a structure or trajectory can't be read: unknown or missing
// extension, I/O failure or a malformed record.
type LoadError struct {
	Path   string //file name, or "" if loading from memory
	Format string
	Err    error
	deco   []string
}

// NewLoadError builds a LoadError for path, in the format format, caused by err.
func NewLoadError(path, format string, err error, caller string) *LoadError {
	return &LoadError{Path: path, Format: format, Err: err, deco: []string{caller}}
}

func (err *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("cannot load")
	if err.Path != "" {
		fmt.Fprintf(&b, " %s", err.Path)
	}
	if err.Format != "" {
		fmt.Fprintf(&b, " (%s)", err.Format)
	}
	fmt.Fprintf(&b, ": %v", err.Err)
	return b.String()
}

func (err *LoadError) Unwrap() error { return err.Err }

// Decorate adds the caller to the decoration slice and returns the slice.
func (err *LoadError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
