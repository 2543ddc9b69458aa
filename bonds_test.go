/*
 * bonds_test.go, part of mogura.
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
	"math/rand"
	"reflect"
	"testing"
)

func TestBondCutoff(Te *testing.T) {
	near := NewStructure([]*Atom{at(0, "A", 1, "GLY", "C", 0, 0, 0), at(0, "A", 1, "GLY", "O", 1.5, 0, 0)})
	b := near.BondsIndirected()
	if len(b) != 1 || b[0] != (Bond{I: 1, J: 0}) {
		Te.Errorf("atoms 1.5 A apart should give the bond 1-0, got %v", b)
	}
	far := NewStructure([]*Atom{at(0, "A", 1, "GLY", "C", 0, 0, 0), at(0, "A", 1, "GLY", "O", 0, 1.7, 0)})
	if b := far.BondsIndirected(); len(b) != 0 {
		Te.Errorf("atoms 1.7 A apart should not be bonded, got %v", b)
	}
	edge := NewStructure([]*Atom{at(0, "A", 1, "GLY", "C", 0, 0, 0), at(0, "A", 1, "GLY", "O", 0, 0, 1.6)})
	if b := edge.BondsIndirected(); len(b) != 1 {
		Te.Errorf("the cutoff is inclusive, got %v", b)
	}
	if b := NewStructure(nil).BondsIndirected(); len(b) != 0 {
		Te.Errorf("no atoms, no bonds")
	}
}

func TestBondsDirected(Te *testing.T) {
	s := sample()
	ind := s.BondsIndirected()
	dir := s.BondsDirected()
	if len(dir) != 2*len(ind) {
		Te.Fatalf("directed bonds should double: %d vs %d", len(dir), len(ind))
	}
	set := make(map[Bond]bool, len(dir))
	for _, v := range dir {
		set[v] = true
	}
	for _, v := range dir {
		if !set[v.Reverse()] {
			Te.Errorf("reverse of %v missing", v)
		}
	}
	for i, v := range ind {
		if v.I <= v.J {
			Te.Errorf("indirected bonds should have I>J, got %v", v)
		}
		if dir[2*i] != v || dir[2*i+1] != v.Reverse() {
			Te.Errorf("directed bond %d out of order", i)
		}
	}
}

func randomCloud(n int, side float64, seed int64) []*Atom {
	r := rand.New(rand.NewSource(seed))
	ats := make([]*Atom, n)
	for i := range ats {
		ats[i] = at(0, "A", i/10, "UNK", "X", r.Float64()*side, r.Float64()*side, r.Float64()*side)
	}
	return NewStructure(ats).Atoms()
}

func TestBondsKDMatchesPairScan(Te *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		ats := randomCloud(600, 12, seed)
		want := BondsIndirected(ats)
		got := BondsIndirectedKD(ats)
		if len(want) == 0 {
			Te.Fatalf("the test cloud is too sparse")
		}
		if !reflect.DeepEqual(want, got) {
			Te.Errorf("seed %d: kd tree gave %d bonds, pair scan %d", seed, len(got), len(want))
		}
	}
	s := sample()
	if !reflect.DeepEqual(s.BondsIndirected(), s.BondsIndirectedKD()) {
		Te.Errorf("kd tree and pair scan differ on the sample")
	}
	if b := BondsIndirectedKD(nil); len(b) != 0 {
		Te.Errorf("no atoms, no bonds")
	}
}

func BenchmarkBondsIndirected(b *testing.B) {
	ats := randomCloud(3000, 30, 7)
	for i := 0; i < b.N; i++ {
		BondsIndirected(ats)
	}
}

func BenchmarkBondsIndirectedKD(b *testing.B) {
	ats := randomCloud(3000, 30, 7)
	for i := 0; i < b.N; i++ {
		BondsIndirectedKD(ats)
	}
}
