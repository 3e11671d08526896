/*
 * details.go, part of gofrag.
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
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	frag "github.com/rmera/gofrag"
)

//ErrNothingToPlot is returned when none of the systems has data for the requested figure.
var ErrNothingToPlot = errors.New("fragplot: nothing to plot")

//curve is one line of a figure.
type curve struct {
	label string
	y     []float64
}

//curvesFunc obtains, from one system, the curves of a figure.
type curvesFunc func(o *frag.Object) ([]curve, error)

//figure describes one figure file.
type figure struct {
	title  string
	file   string
	ylabel string
	ylim   []float64 //nil for autoscale
	peaks  bool      //mark the stationary point of the first curve
	curves curvesFunc
}

//keyCurves returns a curvesFunc that gives the columns keys of each system.
func keyCurves(keys []string) curvesFunc {
	return func(o *frag.Object) ([]curve, error) {
		labels, err := o.PlotLabels(keys...)
		if err != nil {
			return nil, err
		}
		ret := make([]curve, 0, len(keys))
		for i, k := range keys {
			y, err := o.DataOfKey(k)
			if err != nil {
				return nil, err
			}
			ret = append(ret, curve{label: labels[i], y: y})
		}
		return ret, nil
	}
}

//newPlot returns a plot with the fonts, axis labels and axis styles of the settings.
func (s *Settings) newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	variant := fontVariant(s.Font)
	size := vg.Points(float64(s.FontSize))
	small := vg.Points(0.8 * float64(s.FontSize))

	p.Title.Text = title
	p.Title.Padding = vg.Points(10)
	p.Title.TextStyle.Font.Variant = variant
	p.Title.TextStyle.Font.Size = size
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Variant = variant
		ax.Label.TextStyle.Font.Size = size
		ax.Label.Padding = vg.Points(10)
		ax.Tick.Label.Font.Variant = variant
		ax.Tick.Label.Font.Size = small
		ax.LineStyle.Width = vg.Points(2)
		ax.Tick.LineStyle.Width = vg.Points(2)
		ax.Tick.Length = vg.Points(7)
	}
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.TextStyle.Font.Variant = variant
	p.Legend.TextStyle.Font.Size = small
	p.Legend.Top = true
	return p
}

//addCurves draws the curves of every system in objs. With solo, each curve gets its own
//colour and a legend entry. Otherwise each system gets one colour and each curve one
//line style, and only the first curve of each system goes to the legend.
func (s *Settings) addCurves(p *plot.Plot, objs []*frag.Object, f figure, solo bool) error {
	var termLabels []string
	drawn := 0
	for j, o := range objs {
		x, err := o.XAxis(s.Coord)
		if err != nil {
			return err
		}
		curves, err := f.curves(o)
		if err != nil {
			return err
		}
		if len(curves) > len(termLabels) {
			termLabels = termLabels[:0]
			for _, c := range curves {
				termLabels = append(termLabels, c.label)
			}
		}
		for i, c := range curves {
			l, err := plotter.NewLine(xys(x, c.y))
			if err != nil {
				return fmt.Errorf("%s, %s: %w", o.Name, c.label, err)
			}
			if solo {
				l.LineStyle = s.lineStyle(i, 0)
				l.LineStyle.Dashes = nil
				p.Legend.Add(c.label, l)
			} else {
				l.LineStyle = s.lineStyle(j, i)
				if i == 0 {
					p.Legend.Add(o.Name, l)
				}
			}
			p.Add(l)
			drawn++
			if i == 0 && f.peaks && s.PeakType != "" {
				if err := s.addPeak(p, x, c.y, l.LineStyle.Color); err != nil {
					return err
				}
			}
		}
	}
	if drawn == 0 {
		return ErrNothingToPlot
	}
	if !solo && len(termLabels) > 1 {
		for i, label := range termLabels {
			st := s.lineStyle(0, i)
			st.Color = grey
			p.Legend.Add(label, styleThumb(st))
		}
	}
	return nil
}

func (s *Settings) addPeak(p *plot.Plot, x, y []float64, c color.Color) error {
	i := floats.MinIdx(y)
	if s.PeakType == "max" {
		i = floats.MaxIdx(y)
	}
	sc, err := plotter.NewScatter(plotter.XYs{{X: x[i], Y: y[i]}})
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = vg.Points(4)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)
	return nil
}

func xys(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	ret := make(plotter.XYs, n)
	for i := range ret {
		ret[i].X = x[i]
		ret[i].Y = y[i]
	}
	return ret
}

//finish sets the limits of the axes and draws the reference lines: a dashed grey vertical
//line at VLine, if not zero, and a thin grey line at y = 0.
func (s *Settings) finish(p *plot.Plot, ylim []float64) error {
	if len(s.XLim) == 2 {
		p.X.Min, p.X.Max = math.Min(s.XLim[0], s.XLim[1]), math.Max(s.XLim[0], s.XLim[1])
	}
	if len(ylim) == 2 {
		p.Y.Min, p.Y.Max = math.Min(ylim[0], ylim[1]), math.Max(ylim[0], ylim[1])
	}
	xmin, xmax, ymin, ymax := p.X.Min, p.X.Max, p.Y.Min, p.Y.Max
	if s.VLine != 0 {
		v, err := plotter.NewLine(plotter.XYs{{X: s.VLine, Y: ymin}, {X: s.VLine, Y: ymax}})
		if err != nil {
			return err
		}
		v.LineStyle = draw.LineStyle{Color: grey, Width: vg.Points(1), Dashes: []vg.Length{vg.Points(6), vg.Points(3)}}
		p.Add(v)
	}
	if ymin <= 0 && ymax >= 0 {
		z, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: 0}, {X: xmax, Y: 0}})
		if err != nil {
			return err
		}
		z.LineStyle = draw.LineStyle{Color: grey, Width: vg.Points(0.2)}
		p.Add(z)
	}
	//p.Add widens the axes to fit the data, so the limits are set again.
	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = xmin, xmax, ymin, ymax
	if s.ReverseX {
		p.X.Scale = plot.InvertedScale{Normalizer: p.X.Scale}
	}
	return nil
}

//canvas returns a canvas of the given size for the format of the settings. Raster
//formats are drawn at the settings' DPI.
func (s *Settings) canvas(w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch s.Format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(s.DPI))}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(s.DPI))}, nil
	}
	return draw.NewFormattedCanvas(w, h, s.Format)
}

//write creates the file name and writes c to it.
func write(c vg.CanvasWriterTo, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

//render draws f for objs and saves it in dir. It returns the path of the file.
func (s *Settings) render(dir string, objs []*frag.Object, f figure, solo bool) (string, error) {
	p := s.newPlot(f.title, s.CoordLabel, f.ylabel)
	if err := s.addCurves(p, objs, f, solo); err != nil {
		return "", err
	}
	if err := s.finish(p, f.ylim); err != nil {
		return "", err
	}
	c, err := s.canvas(s.size())
	if err != nil {
		return "", err
	}
	p.Draw(draw.New(c))
	name := filepath.Join(dir, f.file)
	if err := write(c, name); err != nil {
		return "", err
	}
	return name, nil
}
