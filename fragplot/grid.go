/*
 * grid.go, part of gofrag.
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

package fragplot

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//maxColumns is the largest number of panels in a row of PlotMultipleGraphs.
const maxColumns = 3

//panel size, in inches.
const (
	panelWidth  = 5
	panelHeight = 3
)

func (m *MultiPlotter) kindKeys(kind string) ([]string, error) {
	switch strings.ToLower(kind) {
	case "asm":
		return m.Settings.ASMKeys, nil
	case "eda":
		return m.Settings.EDAKeys, nil
	case "extra_strain", "strain":
		return m.Settings.StrainKeys, nil
	}
	return nil, fmt.Errorf("fragplot: kind of plot %q is not valid. Valid options are [asm eda extra_strain]", kind)
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

//PlotMultipleGraphs draws the terms keys of each of panels in its own panel of a grid, with at
//most 3 panels per row. kind (asm, eda or extra_strain) gives the default keys. If images is
//not nil, images[i], if not empty, is the path of a PNG picture drawn in the upper right
//corner of the i-th panel. Panels share the style and limits of their own settings, while the
//file format and resolution are those of m. It returns the path of the figure.
func (m *MultiPlotter) PlotMultipleGraphs(panels []*MultiPlotter, kind string, keys []string, images []string) (string, error) {
	if len(panels) == 0 {
		return "", ErrNothingToPlot
	}
	if images != nil && len(images) != len(panels) {
		return "", fmt.Errorf("fragplot: %d images given for %d panels", len(images), len(panels))
	}
	if len(keys) == 0 {
		var err error
		if keys, err = m.kindKeys(kind); err != nil {
			return "", err
		}
	}
	cols := len(panels)
	if cols > maxColumns {
		cols = maxColumns
	}
	rows := (len(panels)-1)/maxColumns + 1
	plots := make([][]*plot.Plot, rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, cols)
	}
	for i, pan := range panels {
		row, col := i/cols, i%cols
		var xlabel, ylabel string
		if col == 0 {
			ylabel = EnergyLabel
		}
		if row == rows-1 {
			xlabel = pan.Settings.CoordLabel
		}
		pkeys := presentKeys(pan.Objects, keys)
		if len(pkeys) == 0 {
			return "", fmt.Errorf("panel %s: %w", pan.Name, ErrNothingToPlot)
		}
		p := pan.Settings.newPlot("", xlabel, ylabel)
		f := figure{ylim: pan.Settings.YLim, peaks: true, curves: keyCurves(pkeys)}
		if err := pan.Settings.addCurves(p, pan.Objects, f, false); err != nil {
			return "", fmt.Errorf("panel %s: %w", pan.Name, err)
		}
		if err := pan.Settings.finish(p, f.ylim); err != nil {
			return "", err
		}
		plots[row][col] = p
	}

	c, err := m.Settings.canvas(vg.Length(cols*panelWidth)*vg.Inch, vg.Length(rows*panelHeight)*vg.Inch)
	if err != nil {
		return "", err
	}
	t := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      4 * vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, t, draw.New(c))
	for j := range plots {
		for i, p := range plots[j] {
			if p == nil {
				continue
			}
			p.Draw(canvases[j][i])
			n := j*cols + i
			if images == nil || images[n] == "" {
				continue
			}
			img, err := loadImage(images[n])
			if err != nil {
				return "", fmt.Errorf("fragplot: image for panel %s: %w", panels[n].Name, err)
			}
			drawCorner(canvases[j][i], img)
		}
	}
	name := filepath.Join(m.Dir, m.Settings.fileName("Combined", keys...))
	if err := write(c, name); err != nil {
		return "", err
	}
	return name, nil
}

//drawCorner draws img in the upper right part of dc, 20% of the width of dc wide.
func drawCorner(dc draw.Canvas, img image.Image) {
	b := img.Bounds()
	if b.Dx() == 0 {
		return
	}
	size := dc.Size()
	w := size.X * 0.2
	h := w * vg.Length(b.Dy()) / vg.Length(b.Dx())
	corner := vg.Point{X: dc.Min.X + size.X*0.7, Y: dc.Min.Y + size.Y*0.8 - h/2}
	dc.DrawImage(vg.Rectangle{Min: corner, Max: vg.Point{X: corner.X + w, Y: corner.Y + h}}, img)
}
