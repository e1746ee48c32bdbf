/*
 * plot.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//Package chemplot draws plots of gofrag results with gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Histograms plots one histogram for each set of values in data, overlaid, each with its own
//color and, if names is not nil, with the corresponding name in the legend. Each bin spans
//one unit, so the data is expected to be counts. The plot is saved as plotname, with a png
//extension added if plotname has no extension.
func Histograms(data [][]float64, names []string, title, xlabel, plotname string) error {
	if len(data) == 0 {
		return fmt.Errorf("chemplot: no data to plot")
	}
	if names != nil && len(names) != len(data) {
		return fmt.Errorf("chemplot: %d names for %d data sets", len(names), len(data))
	}
	p := basicPlot(title, xlabel, "Count")
	for key, val := range data {
		if len(val) == 0 {
			continue
		}
		min, max := math.Inf(1), math.Inf(-1)
		for _, v := range val {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
		h, err := plotter.NewHist(plotter.Values(val), int(max-min)+1)
		if err != nil {
			return fmt.Errorf("chemplot: data set %d: %w", key, err)
		}
		r, g, b := colors(key, len(data))
		h.FillColor = color.RGBA{R: r, G: g, B: b, A: 128}
		p.Add(h)
		if names != nil {
			p.Legend.Add(names[key], h)
		}
	}
	p.Legend.Top = true
	if !strings.Contains(plotname, ".") {
		plotname += ".png"
	}
	if err := p.Save(5*vg.Inch, 4*vg.Inch, plotname); err != nil {
		return fmt.Errorf("chemplot: saving %s: %w", plotname, err)
	}
	return nil
}

//FragmentSizes plots the distribution of fragment sizes, counting all atoms and only the heavy ones.
func FragmentSizes(all, heavy []int, title, plotname string) error {
	toFloat := func(s []int) []float64 {
		r := make([]float64, len(s))
		for i, v := range s {
			r[i] = float64(v)
		}
		return r
	}
	return Histograms([][]float64{toFloat(all), toFloat(heavy)}, []string{"All atoms", "Heavy atoms"}, title, "Atoms per fragment", plotname)
}

//hsv2rgb converts the hue h (degrees), saturation s and value v (0-1) to 8-bit RGB.
func hsv2rgb(h, s, v float64) (r, g, b uint8) {
	c := v * s
	hp := math.Mod(math.Mod(h, 360)+360, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var rf, gf, bf float64
	switch {
	case hp < 1:
		rf, gf = c, x
	case hp < 2:
		rf, gf = x, c
	case hp < 3:
		gf, bf = c, x
	case hp < 4:
		gf, bf = x, c
	case hp < 5:
		rf, bf = x, c
	default:
		rf, bf = c, x
	}
	m := v - c
	to8 := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return to8(rf), to8(gf), to8(bf)
}

//colors returns well separated hues, from orange to violet, for the data set key out of steps.
func colors(key, steps int) (r, g, b uint8) {
	h := 20 + float64(key)*260/float64(steps)
	return hsv2rgb(h, 1, 1)
}
