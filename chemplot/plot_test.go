/*
 * plot_test.go, part of mogura.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/mogura"
	"github.com/rmera/mogura/ss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func torsions() []ss.Torsion {
	return []ss.Torsion{
		{Psi: 150, HasPsi: true},
		{Residue: &chem.Residue{MolName: "ALA", MolID: 2}, Phi: -60, Psi: -45, HasPhi: true, HasPsi: true},
		{Phi: -63, Psi: -41, HasPhi: true, HasPsi: true},
		{Phi: -120, Psi: 130, HasPhi: true, HasPsi: true},
		{Residue: &chem.Residue{MolName: "GLY", MolID: 5}, Phi: 80, Psi: 10, HasPhi: true, HasPsi: true},
		{Phi: -70, HasPhi: true},
	}
}

func TestRamaData(t *testing.T) {
	data := RamaData(torsions())
	assert.Len(t, data[ss.Helix], 2)
	assert.Len(t, data[ss.Strand], 1)
	assert.Len(t, data[ss.Loop], 1)
	assert.Equal(t, 80.0, data[ss.Loop][0].X)
}

func TestRamaPlot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, RamaPlot(torsions(), []int{1, 4}, "Test Ramachandran", filepath.Join(dir, "rama")))
	_, err := os.Stat(filepath.Join(dir, "rama.png"))
	assert.NoError(t, err)

	require.NoError(t, RamaPlot(torsions(), nil, "Test", filepath.Join(dir, "rama.svg")))
	_, err = os.Stat(filepath.Join(dir, "rama.svg"))
	assert.NoError(t, err)

	//nothing to plot is still a valid, empty plot.
	require.NoError(t, RamaPlot(nil, nil, "Empty", filepath.Join(dir, "empty.png")))

	assert.Error(t, RamaPlot(torsions(), []int{0, 1, 2, 3, 4}, "Too many", filepath.Join(dir, "bad.png")))
}

func TestColors(t *testing.T) {
	seen := map[[3]uint8]bool{}
	for i := range labelOrder {
		r, g, b := colors(i, len(labelOrder))
		seen[[3]uint8{r, g, b}] = true
	}
	assert.Len(t, seen, len(labelOrder))
	r, g, b := iHVS2RGB(0, 1, 0)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
}
