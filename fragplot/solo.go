/*
 * solo.go, part of gofrag.
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
	"os"
	"path/filepath"

	frag "github.com/rmera/gofrag"
)

//SoloPlotter draws the figures of a single system, in their own directory.
type SoloPlotter struct {
	Settings *Settings
	Object   *frag.Object
	Dir      string
}

//NewSoloPlotter returns a SoloPlotter that writes to plotDir/<name of o>, creating
//the directory if needed. A nil s means DefaultSettings.
func NewSoloPlotter(plotDir string, o *frag.Object, s *Settings) (*SoloPlotter, error) {
	if o == nil {
		return nil, fmt.Errorf("fragplot: no system given")
	}
	if s == nil {
		s = DefaultSettings()
	}
	dir := filepath.Join(plotDir, o.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SoloPlotter{Settings: s, Object: o, Dir: dir}, nil
}

func (sp *SoloPlotter) render(f figure) (string, error) {
	return sp.Settings.render(sp.Dir, []*frag.Object{sp.Object}, f, true)
}

func (sp *SoloPlotter) terms(prefix string, keys []string) (string, error) {
	keys = presentKeys([]*frag.Object{sp.Object}, keys)
	if len(keys) == 0 {
		return "", ErrNothingToPlot
	}
	return sp.render(figure{
		title:  fmt.Sprintf("%s %s", sp.Object.Name, prefix),
		file:   sp.Settings.fileName(prefix, keys...),
		ylabel: EnergyLabel,
		ylim:   sp.Settings.YLim,
		peaks:  true,
		curves: keyCurves(keys),
	})
}

//PlotASM draws the activation strain terms. It returns the path of the figure.
func (sp *SoloPlotter) PlotASM() (string, error) {
	return sp.terms("ASM", sp.Settings.ASMKeys)
}

//PlotEDA draws the energy decomposition terms.
func (sp *SoloPlotter) PlotEDA() (string, error) {
	return sp.terms("EDA", sp.Settings.EDAKeys)
}

//PlotOverlaps draws all the overlaps of the system.
func (sp *SoloPlotter) PlotOverlaps() (string, error) {
	return sp.render(figure{
		title:  sp.Object.Name + " overlaps",
		file:   sp.Settings.fileName("Overlaps"),
		ylabel: "S",
		curves: kindCurves(frag.OverlapKey),
	})
}

//PlotPopulations draws all the gross populations of the system.
func (sp *SoloPlotter) PlotPopulations() (string, error) {
	return sp.render(figure{
		title:  sp.Object.Name + " populations",
		file:   sp.Settings.fileName("Populations"),
		ylabel: "Gross population / e",
		curves: kindCurves(frag.PopulationKey),
	})
}

//PlotEnergyGaps draws the gaps between each pair of orbital energies.
func (sp *SoloPlotter) PlotEnergyGaps() (string, error) {
	return sp.render(figure{
		title:  sp.Object.Name + " energy gaps",
		file:   sp.Settings.fileName("EnergyGaps"),
		ylabel: "Δε / eV",
		curves: gapCurves,
	})
}

//Plot draws every figure for which the system has data, and returns their paths.
func (sp *SoloPlotter) Plot() ([]string, error) {
	return plotAll(sp.PlotASM, sp.PlotEDA, sp.PlotOverlaps, sp.PlotPopulations, sp.PlotEnergyGaps)
}

//plotAll runs each of plots, skipping those with nothing to plot.
func plotAll(plots ...func() (string, error)) ([]string, error) {
	var ret []string
	for _, p := range plots {
		name, err := p()
		if errors.Is(err, ErrNothingToPlot) {
			continue
		}
		if err != nil {
			return ret, err
		}
		ret = append(ret, name)
	}
	return ret, nil
}
