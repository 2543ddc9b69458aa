/*
 * ramachandran.go, part of mogura.
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
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/rmera/mogura/ss"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The labels, in the order they are plotted and colored.
var labelOrder = []ss.Label{ss.Loop, ss.Helix, ss.Strand}

func basicRamaPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	return p
}

// RamaData returns the phi/psi pairs of the torsions that have both angles defined,
// grouped by the label of the residue.
func RamaData(torsions []ss.Torsion) map[ss.Label]plotter.XYs {
	ret := make(map[ss.Label]plotter.XYs)
	for _, v := range torsions {
		if !v.HasPhi || !v.HasPsi {
			continue
		}
		l := v.Label()
		ret[l] = append(ret[l], plotter.XY{X: v.Phi, Y: v.Psi})
	}
	return ret
}

// RamaPlot produces a Ramachandran plot of the phi and psi angles in torsions, colored
// by secondary structure. Residues without both angles are skipped. The torsions with
// indexes in tag (at most 4) are highlighted with a different glyph. The format is
// taken from the extension of plotname (png, svg, pdf...); png is used if it has none.
func RamaPlot(torsions []ss.Torsion, tag []int, title, plotname string) error {
	if len(tag) > maxTags {
		return fmt.Errorf("RamaPlot: at most %d residues can be tagged, %d given", maxTags, len(tag))
	}
	p := basicRamaPlot(title)
	data := RamaData(torsions)
	for key, l := range labelOrder {
		pts, ok := data[l]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(labelOrder))
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(l.String(), s)
	}
	var tagged int
	for key, v := range torsions {
		if !isInInt(tag, key) || !v.HasPhi || !v.HasPsi {
			continue
		}
		s, err := plotter.NewScatter(plotter.XYs{{X: v.Phi, Y: v.Psi}})
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = getShape(tagged)
		s.GlyphStyle.Radius = vg.Points(5)
		tagged++
		p.Add(s)
		if v.Residue != nil {
			p.Legend.Add(fmt.Sprintf("%s%d", v.Residue.MolName, v.Residue.MolID), s)
		}
	}
	if filepath.Ext(plotname) == "" {
		plotname += ".png"
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, plotname)
}

const maxTags = 4

func getShape(tagged int) draw.GlyphDrawer {
	switch tagged {
	case 0:
		return draw.PyramidGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.CrossGlyph{}
	default:
		return draw.RingGlyph{}
	}
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var r, g, b float64
	const maxcolor = 255.0
	if s == 0.0 {
		c := uint8(maxcolor * v)
		return c, c, c
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

// colors returns a color for the item key out of steps, spread over the hue circle
// but skipping the yellows, which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
