/*
 * settings.go, part of gofrag.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package fragplot draws the activation strain, energy decomposition and orbital
//analysis figures of one or more PyFrag calculations, using gonum/plot.
package fragplot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/rmera/gofrag/config"
)

//EnergyLabel is the label of the energy axis.
const EnergyLabel = "ΔE / kcal mol⁻¹"

//Settings contains what is needed to draw a figure: which coordinate to use as x axis,
//the look of the lines and the details of the figure. Create it with SettingsFromConfig
//or DefaultSettings, and call Init after changing it.
type Settings struct {
	Coord      string //the key of the reaction coordinate
	CoordLabel string
	Colours    []string
	LineStyles []string
	PeakType   string //"min" or "max". Empty means the stationary points are not marked.
	XLim, YLim []float64
	ReverseX   bool
	VLine      float64 //draws a vertical line here, if not zero
	FigSize    [2]float64 //inches
	Font       string
	FontSize   int //points
	DPI        int
	Format     string //file extension, without the dot

	ASMKeys, StrainKeys, EDAKeys []string

	colours      []color.Color
	dashPatterns [][]vg.Length
}

//Init checks the settings and parses the colours and line styles.
func (s *Settings) Init() error {
	s.colours = nil
	for _, c := range s.Colours {
		col, err := ParseColour(c)
		if err != nil {
			return fmt.Errorf("fragplot: %w", err)
		}
		s.colours = append(s.colours, col)
	}
	s.dashPatterns = nil
	for _, l := range s.LineStyles {
		d, err := ParseLineStyle(l)
		if err != nil {
			return fmt.Errorf("fragplot: %w", err)
		}
		s.dashPatterns = append(s.dashPatterns, d)
	}
	if len(s.XLim) != 0 && len(s.XLim) != 2 {
		return fmt.Errorf("fragplot: x_lim needs 2 values, got %v", s.XLim)
	}
	if len(s.YLim) != 0 && len(s.YLim) != 2 {
		return fmt.Errorf("fragplot: y_lim needs 2 values, got %v", s.YLim)
	}
	if s.FigSize[0] <= 0 || s.FigSize[1] <= 0 {
		return fmt.Errorf("fragplot: invalid figure size %v", s.FigSize)
	}
	s.Format = strings.ToLower(strings.TrimPrefix(s.Format, "."))
	if s.Format == "" {
		s.Format = "png"
	}
	if s.DPI <= 0 {
		s.DPI = 96
	}
	p := strings.ToLower(s.PeakType)
	switch p {
	case "min", "max", "":
		s.PeakType = p
	case "none":
		s.PeakType = ""
	default:
		return fmt.Errorf("fragplot: stat_point_type %q is not valid. Valid options are [min max none]", s.PeakType)
	}
	return nil
}

//SettingsFromConfig reads the plot settings from the SHARED, ASM, EDA and FIGURE
//sections of c.
func SettingsFromConfig(c *config.Config) (*Settings, error) {
	s := new(Settings)
	var err error
	str := func(section, option string) string {
		if err != nil {
			return ""
		}
		var v string
		v, err = c.String(section, option)
		return v
	}
	strs := func(section, option string) []string {
		if err != nil {
			return nil
		}
		var v []string
		v, err = c.Strings(section, option)
		return v
	}
	nums := func(section, option string) []float64 {
		if err != nil {
			return nil
		}
		var v []float64
		v, err = c.Floats(section, option)
		return v
	}
	s.Coord = str(config.Shared, "irc_coord")
	s.CoordLabel = str(config.Shared, "irc_coord_label")
	s.Colours = strs(config.Shared, "colours")
	s.LineStyles = strs(config.Shared, "line_styles")
	s.PeakType = str(config.Shared, "stat_point_type")
	s.XLim = nums(config.Shared, "x_lim")
	s.YLim = nums(config.Shared, "y_lim")
	s.ASMKeys = strs(config.ASM, "ASM_keys")
	s.StrainKeys = strs(config.ASM, "ASM_strain_keys")
	s.EDAKeys = strs(config.EDA, "EDA_keys")
	s.Font = str(config.Figure, "font")
	s.Format = str(config.Figure, "format")
	size := nums(config.Figure, "fig_size")
	if err != nil {
		return nil, err
	}
	if len(size) != 2 {
		return nil, fmt.Errorf("fragplot: fig_size needs 2 values, got %v", size)
	}
	s.FigSize = [2]float64{size[0], size[1]}
	if s.ReverseX, err = c.Bool(config.Shared, "reverse_x_axis"); err != nil {
		return nil, err
	}
	if s.VLine, err = c.Float(config.Shared, "vline"); err != nil {
		return nil, err
	}
	if s.FontSize, err = c.Int(config.Figure, "font_size"); err != nil {
		return nil, err
	}
	if s.DPI, err = c.Int(config.Figure, "dpi"); err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

//DefaultSettings returns the settings of the built-in configuration.
func DefaultSettings() *Settings {
	s, err := SettingsFromConfig(config.Default())
	if err != nil {
		panic("fragplot: built-in settings are invalid: " + err.Error())
	}
	return s
}

func (s *Settings) size() (vg.Length, vg.Length) {
	return vg.Length(s.FigSize[0]) * vg.Inch, vg.Length(s.FigSize[1]) * vg.Inch
}

//fileName returns the name of a figure file built from prefix and keys.
func (s *Settings) fileName(prefix string, keys ...string) string {
	parts := append([]string{prefix}, keys...)
	name := strings.Join(parts, "_")
	name = strings.NewReplacer(" ", "", "/", "-").Replace(name)
	return name + "." + s.Format
}
