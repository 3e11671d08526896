/*
 * multi.go, part of gofrag.
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
	"math"
	"os"
	"path/filepath"
	"strings"

	frag "github.com/rmera/gofrag"
)

//MultiPlotter draws figures that compare several systems. Each system gets one colour
//and each term one line style.
type MultiPlotter struct {
	Name     string
	Dir      string
	Settings *Settings
	Objects  []*frag.Object
}

//NewMultiPlotter returns a MultiPlotter that writes to plotDir/name, creating the
//directory if needed. A nil s means DefaultSettings.
func NewMultiPlotter(name, plotDir string, objs []*frag.Object, s *Settings) (*MultiPlotter, error) {
	if len(objs) == 0 {
		return nil, fmt.Errorf("fragplot: no systems given")
	}
	if s == nil {
		s = DefaultSettings()
	}
	dir := filepath.Join(plotDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &MultiPlotter{Name: name, Dir: dir, Settings: s, Objects: objs}, nil
}

func (m *MultiPlotter) render(f figure) (string, error) {
	return m.Settings.render(m.Dir, m.Objects, f, false)
}

func (m *MultiPlotter) terms(prefix string, keys []string, ylim []float64) (string, error) {
	keys = presentKeys(m.Objects, keys)
	if len(keys) == 0 {
		return "", ErrNothingToPlot
	}
	return m.render(figure{
		title:  prefix + " " + strings.Join(keys, " "),
		file:   m.Settings.fileName(prefix, keys...),
		ylabel: EnergyLabel,
		ylim:   ylim,
		peaks:  true,
		curves: keyCurves(keys),
	})
}

//PlotASM draws the activation strain terms keys, or those of the settings if none
//are given. It returns the path of the figure.
func (m *MultiPlotter) PlotASM(keys ...string) (string, error) {
	if len(keys) == 0 {
		keys = m.Settings.ASMKeys
	}
	return m.terms("ASM", keys, m.Settings.YLim)
}

//PlotEDA draws the energy decomposition terms keys, or those of the settings.
func (m *MultiPlotter) PlotEDA(keys ...string) (string, error) {
	if len(keys) == 0 {
		keys = m.Settings.EDAKeys
	}
	return m.terms("EDA", keys, m.Settings.YLim)
}

//PlotExtraStrain draws the decomposition of the strain, by default the total
//strain and the strain of each fragment.
func (m *MultiPlotter) PlotExtraStrain(keys ...string) (string, error) {
	if len(keys) == 0 {
		keys = m.Settings.StrainKeys
	}
	return m.terms("Strain", keys, m.Settings.YLim)
}

//PlotEDATerms draws one figure per energy decomposition term.
func (m *MultiPlotter) PlotEDATerms() ([]string, error) {
	var ret []string
	for _, k := range presentKeys(m.Objects, m.Settings.EDAKeys) {
		name, err := m.terms("EDA", []string{k}, m.Settings.YLim)
		if err != nil {
			return ret, err
		}
		ret = append(ret, name)
	}
	return ret, nil
}

//PlotArbitraryKeys draws any columns of the results. title is also the name of the
//file. A nil ylim gives the y limits of the settings.
func (m *MultiPlotter) PlotArbitraryKeys(title string, keys []string, ylim []float64) (string, error) {
	if ylim == nil {
		ylim = m.Settings.YLim
	}
	keys = presentKeys(m.Objects, keys)
	if len(keys) == 0 {
		return "", ErrNothingToPlot
	}
	return m.render(figure{
		title:  title,
		file:   m.Settings.fileName(title),
		ylabel: EnergyLabel,
		ylim:   ylim,
		peaks:  true,
		curves: keyCurves(keys),
	})
}

//PlotOverlap draws the overlaps of every system.
func (m *MultiPlotter) PlotOverlap() (string, error) {
	return m.render(figure{title: "Overlap", file: m.Settings.fileName("Overlap"), ylabel: "S", curves: kindCurves(frag.OverlapKey)})
}

//PlotPopulation draws the gross populations of every system.
func (m *MultiPlotter) PlotPopulation() (string, error) {
	return m.render(figure{title: "Population", file: m.Settings.fileName("Population"), ylabel: "Gross population / e", curves: kindCurves(frag.PopulationKey)})
}

//PlotEnergyGap draws the gap between each pair of orbital energies of every system.
func (m *MultiPlotter) PlotEnergyGap() (string, error) {
	return m.render(figure{title: "Energy gap", file: m.Settings.fileName("EnergyGap"), ylabel: "Δε / eV", curves: gapCurves})
}

//PlotStabilization draws S²/Δε for each pair of orbitals of every system.
func (m *MultiPlotter) PlotStabilization() (string, error) {
	return m.render(figure{title: "Orbital stabilization", file: m.Settings.fileName("Stabilization"), ylabel: "S²/Δε / eV⁻¹", curves: stabilizationCurves})
}

//Plot draws every figure for which the systems have data, and returns their paths.
func (m *MultiPlotter) Plot() ([]string, error) {
	ret, err := plotAll(
		func() (string, error) { return m.PlotASM() },
		func() (string, error) { return m.PlotEDA() },
		func() (string, error) { return m.PlotExtraStrain() },
		m.PlotOverlap,
		m.PlotPopulation,
		m.PlotEnergyGap,
		m.PlotStabilization,
	)
	if err != nil {
		return ret, err
	}
	terms, err := m.PlotEDATerms()
	return append(ret, terms...), err
}

//MaxPeakCoord returns the largest value of the reaction coordinate at which one of the
//systems has the stationary point of its total energy. Without a peak type, the
//maxima are used.
func (m *MultiPlotter) MaxPeakCoord() (float64, error) {
	peak := m.Settings.PeakType
	if peak == "" {
		peak = "max"
	}
	ret := math.Inf(-1)
	for _, o := range m.Objects {
		i, _, err := o.PeakOfKey(frag.DefaultEnergyKey, peak)
		if err != nil {
			return 0, err
		}
		x, err := o.XAxis(m.Settings.Coord)
		if err != nil {
			return 0, err
		}
		ret = math.Max(ret, x[i])
	}
	return ret, nil
}
