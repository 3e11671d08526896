/*
 * style.go, part of gofrag.
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
	"image/color"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var grey = color.RGBA{R: 128, G: 128, B: 128, A: 255}

//ParseColour returns the colour with the given name (SVG colour names, case insensitive),
//or given as #rrggbb.
func ParseColour(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		var r, g, b uint8
		if len(s) != 7 {
			return nil, fmt.Errorf("colour %q: expected #rrggbb", s)
		}
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("colour %q: %w", s, err)
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("colour %q is not a known colour name", s)
}

//dash patterns, in points.
var lineStyles = map[string][]float64{
	"solid":   nil,
	"-":       nil,
	"dashed":  {6, 3},
	"--":      {6, 3},
	"dotted":  {1.5, 3},
	":":       {1.5, 3},
	"dashdot": {6, 3, 1.5, 3},
	"-.":      {6, 3, 1.5, 3},
}

//ParseLineStyle returns the dash pattern of a line style: solid, dashed, dotted or dashdot,
//or their short forms -, --, : and -.
func ParseLineStyle(s string) ([]vg.Length, error) {
	d, ok := lineStyles[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return nil, fmt.Errorf("line style %q is not valid. Valid options are [solid dashed dotted dashdot]", s)
	}
	ret := make([]vg.Length, len(d))
	for i, v := range d {
		ret[i] = vg.Points(v)
	}
	return ret, nil
}

//colour returns the i-th colour of the settings. Colours are reused when there are
//more lines than colours.
func (s *Settings) colour(i int) color.Color {
	if len(s.colours) == 0 {
		return color.Black
	}
	return s.colours[i%len(s.colours)]
}

func (s *Settings) dashes(i int) []vg.Length {
	if len(s.dashPatterns) == 0 {
		return nil
	}
	return s.dashPatterns[i%len(s.dashPatterns)]
}

func (s *Settings) lineStyle(i, j int) draw.LineStyle {
	return draw.LineStyle{Color: s.colour(i), Width: vg.Points(2), Dashes: s.dashes(j)}
}

var fontVariants = map[string]font.Variant{
	"sans":       "Sans",
	"sans-serif": "Sans",
	"arial":      "Sans",
	"helvetica":  "Sans",
	"serif":      "Serif",
	"times":      "Serif",
	"mono":       "Mono",
	"monospace":  "Mono",
	"courier":    "Mono",
}

//fontVariant maps a font family to one of the variants of the Liberation fonts
//bundled with gonum/plot.
func fontVariant(family string) font.Variant {
	if v, ok := fontVariants[strings.ToLower(strings.TrimSpace(family))]; ok {
		return v
	}
	zap.L().Warn("unknown font, using Sans", zap.String("font", family))
	return "Sans"
}

//styleThumb draws a line style in the legend without data attached.
type styleThumb draw.LineStyle

func (t styleThumb) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(draw.LineStyle(t), c.Min.X, y, c.Max.X, y)
}
