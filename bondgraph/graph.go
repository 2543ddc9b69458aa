/*
 * graph.go, part of mogura.
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

package bondgraph

import (
	"fmt"
	"sort"

	chem "github.com/rmera/mogura"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a graph node wrapping a chem.Atom. Its graph ID is the atom ID.
type Atom struct {
	*chem.Atom
}

// ID implements graph.Node
func (A Atom) ID() int64 {
	return int64(A.Atom.ID)
}

// Graph is the undirected graph of the bonds of a structure. It is not
// modified after New returns.
type Graph struct {
	g     *simple.UndirectedGraph
	atoms []*chem.Atom
}

// New builds the bond graph of atoms, which must be ordered by ID, from bonds
// given by atom IDs. Each bond may be given once or in both directions. It
// returns an error if a bond refers to an atom not in atoms.
func New(atoms []*chem.Atom, bonds []chem.Bond) (*Graph, error) {
	G := &Graph{g: simple.NewUndirectedGraph(), atoms: atoms}
	for _, v := range atoms {
		G.g.AddNode(Atom{v})
	}
	for i, b := range bonds {
		if b.I < 0 || b.J < 0 || b.I >= len(atoms) || b.J >= len(atoms) {
			return nil, chem.NewError(fmt.Sprintf("bond %d (%d-%d) refers to an atom out of range", i, b.I, b.J), "bondgraph.New")
		}
		if b.I == b.J || G.g.HasEdgeBetween(int64(b.I), int64(b.J)) {
			continue
		}
		G.g.SetEdge(G.g.NewEdge(Atom{atoms[b.I]}, Atom{atoms[b.J]}))
	}
	return G, nil
}

// FromStructure builds the bond graph of S from its inferred bonds.
func FromStructure(S *chem.Structure) *Graph {
	//the bonds can't be out of range, so this doesn't fail.
	G, err := New(S.Atoms(), S.BondsIndirected())
	if err != nil {
		panic(err.Error())
	}
	return G
}

// Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.atoms)
}

// NBonds returns the number of bonds in the graph.
func (G *Graph) NBonds() int {
	return G.g.Edges().Len()
}

// Graph returns the underlying gonum graph, for use with other gonum algorithms.
func (G *Graph) Graph() graph.Undirected {
	return G.g
}

// Neighbors returns the sorted IDs of the atoms bonded to the atom with ID id.
func (G *Graph) Neighbors(id int) []int {
	if G.g.Node(int64(id)) == nil {
		return nil
	}
	return sortedIDs(graph.NodesOf(G.g.From(int64(id))))
}

// Degree returns the number of bonds of the atom with ID id.
func (G *Graph) Degree(id int) int {
	if G.g.Node(int64(id)) == nil {
		return 0
	}
	return G.g.From(int64(id)).Len()
}

// Fragments returns the covalently connected fragments (molecules) of the graph, as
// sorted lists of atom IDs. Fragments are ordered by their smallest atom ID.
func (G *Graph) Fragments() [][]int {
	cc := topo.ConnectedComponents(G.g)
	ret := make([][]int, 0, len(cc))
	for _, v := range cc {
		ret = append(ret, sortedIDs(v))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// Path returns the IDs of the atoms in the shortest bond path from one atom to the
// other, both included, or nil if they are not connected.
func (G *Graph) Path(from, to int) []int {
	if G.g.Node(int64(from)) == nil || G.g.Node(int64(to)) == nil {
		return nil
	}
	sh := path.DijkstraFrom(G.g.Node(int64(from)), G.g)
	p, _ := sh.To(int64(to))
	if len(p) == 0 {
		return nil
	}
	ret := make([]int, len(p))
	for i, v := range p {
		ret[i] = int(v.ID())
	}
	return ret
}

// Adjacency returns the adjacency lists of natoms atoms from directed bonds, as
// given by chem.BondsDirected: the list for atom i holds the sorted IDs of every J
// in a bond {i, J}.
func Adjacency(natoms int, directed []chem.Bond) [][]int {
	adj := make([][]int, natoms)
	for _, b := range directed {
		if b.I < 0 || b.I >= natoms {
			continue
		}
		adj[b.I] = append(adj[b.I], b.J)
	}
	for _, v := range adj {
		sort.Ints(v)
	}
	return adj
}

func sortedIDs(nodes []graph.Node) []int {
	ret := make([]int, len(nodes))
	for i, v := range nodes {
		ret[i] = int(v.ID())
	}
	sort.Ints(ret)
	return ret
}
