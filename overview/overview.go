/*
 * overview.go, part of gofrag.
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

//Package overview draws quick-look charts of PyFrag results: one term of several
//systems against the reaction coordinate, in a single PNG, without any of the
//figure settings used by fragplot.
package overview

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	frag "github.com/rmera/gofrag"
)

//Size of the charts, in pixels.
const (
	Width  = 1024
	Height = 640
)

//Render writes to w a PNG line chart of key against coord for each of objs.
func Render(w io.Writer, objs []*frag.Object, coord, key string) error {
	if len(objs) == 0 {
		return fmt.Errorf("overview: no systems given")
	}
	series := make([]chart.Series, 0, len(objs))
	for i, o := range objs {
		x, err := o.XAxis(coord)
		if err != nil {
			return fmt.Errorf("overview: %w", err)
		}
		y, err := o.DataOfKey(key)
		if err != nil {
			return fmt.Errorf("overview: %w", err)
		}
		if len(x) < 2 {
			return fmt.Errorf("overview: %s: %s", o.Name, frag.NotEnoughPoints)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    o.Name,
			XValues: x,
			YValues: y,
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.GetDefaultColor(i),
				DotWidth:    3,
				DotColor:    chart.GetDefaultColor(i),
			},
		})
	}
	label := key
	if l, err := objs[0].PlotLabels(key); err == nil {
		label = l[0]
	}
	ch := chart.Chart{
		Title:      label,
		Width:      Width,
		Height:     Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: coord},
		YAxis:      chart.YAxis{Name: label},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

//RenderFile is Render to the file name.
func RenderFile(name string, objs []*frag.Object, coord, key string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Render(f, objs, coord, key); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
