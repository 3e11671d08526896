/*
 * systems.go, part of gofrag.
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

package interpolate

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	frag "github.com/rmera/gofrag"
)

//Keys are the terms interpolated for each block of the report.
type Keys struct {
	ASM    []string
	Strain []string
	EDA    []string
}

//DefaultKeys are the terms reported when no others are given.
var DefaultKeys = Keys{
	ASM:    []string{"EnergyTotal", "Int", "StrainTotal"},
	Strain: []string{"StrainTotal", "frag1Strain", "frag2Strain"},
	EDA:    []string{"Int", "Elstat", "OI", "Pauli"},
}

//OrbitalPair holds the interpolated orbital properties of the n-th pair of orbitals
//of a system: the n-th overlap, and the orbital energies and populations 2n-1 and 2n.
//Properties not present in the results are left as zero.
type OrbitalPair struct {
	Label      string
	Overlap    float64
	MO1, MO2   float64 //eV
	Gap        float64 //eV
	Pop1, Pop2 float64
}

//Stabilization returns S²/gap×100, in 1/eV, or 0 if the gap is zero.
func (p OrbitalPair) Stabilization() float64 {
	if math.Abs(p.Gap) <= 1e-8 {
		return 0
	}
	return p.Overlap * p.Overlap / p.Gap * 100
}

//System contains the interpolated data of one PyFrag calculation.
type System struct {
	Name     string
	Indices  [2]int     //0-based rows of the two points used
	Coords   [2]float64 //the values of the reaction coordinate at those rows
	Values   map[string]float64
	Orbitals []OrbitalPair
}

//Systems interpolates several PyFrag calculations at the same point of
//the reaction coordinate.
type Systems struct {
	Coord   string
	Point   float64
	Keys    Keys
	objs    []*frag.Object
	Results []*System //filled by Run, in the order of the objects
}

//New returns a Systems that will interpolate objs at point of coord. A zero keys
//gives DefaultKeys.
func New(objs []*frag.Object, coord string, point float64, keys Keys) *Systems {
	if keys.ASM == nil && keys.Strain == nil && keys.EDA == nil {
		keys = DefaultKeys
	}
	return &Systems{Coord: coord, Point: point, Keys: keys, objs: objs}
}

func (k Keys) all() []string {
	seen := make(map[string]bool)
	var ret []string
	for _, l := range [][]string{k.ASM, k.Strain, k.EDA} {
		for _, s := range l {
			if !seen[s] {
				seen[s] = true
				ret = append(ret, s)
			}
		}
	}
	return ret
}

//Run interpolates every system. For each one, the two consecutive points between which
//the reaction coordinate crosses Point are found, and a straight line through
//them is evaluated at Point. Keys missing in a system are skipped with a warning.
func (s *Systems) Run() error {
	s.Results = make([]*System, 0, len(s.objs))
	for _, o := range s.objs {
		sys, err := s.system(o)
		if err != nil {
			return fmt.Errorf("interpolating %s at %g: %w", o.Name, s.Point, err)
		}
		s.Results = append(s.Results, sys)
	}
	return nil
}

func (s *Systems) system(o *frag.Object) (*System, error) {
	x, err := o.XAxis(s.Coord)
	if err != nil {
		return nil, err
	}
	idx, err := nearestTwoPoints(x, s.Point)
	if err != nil {
		return nil, err
	}
	xs := [2]float64{x[idx[0]], x[idx[1]]}
	sys := &System{Name: o.Name, Indices: idx, Coords: xs, Values: make(map[string]float64)}
	at := func(key string) (float64, bool) {
		y, err := o.DataOfKey(key)
		if err != nil {
			return 0, false
		}
		return linear(xs, [2]float64{y[idx[0]], y[idx[1]]}, s.Point), true
	}
	for _, key := range s.Keys.all() {
		v, ok := at(key)
		if !ok {
			zap.L().Warn("key not in results, not interpolated", zap.String("system", o.Name), zap.String("key", key))
			continue
		}
		sys.Values[key] = v
	}

	overlaps := o.OverlapKeys()
	energies := o.OrbitalEnergyKeys()
	pops := o.PopulationKeys()
	n := len(overlaps)
	if m := len(energies) / 2; m > n {
		n = m
	}
	if m := len(pops) / 2; m > n {
		n = m
	}
	for i := 0; i < n; i++ {
		var p OrbitalPair
		var label string
		if i < len(overlaps) {
			p.Overlap, _ = at(overlaps[i])
			if prop, err := o.Property(overlaps[i]); err == nil {
				label = prop.Label()
			}
		}
		if 2*i+1 < len(energies) {
			p.MO1, _ = at(energies[2*i])
			p.MO2, _ = at(energies[2*i+1])
			if gap, err := o.EnergyGap(energies[2*i], energies[2*i+1]); err == nil {
				p.Gap = linear(xs, [2]float64{gap[idx[0]], gap[idx[1]]}, s.Point)
			}
			p.MO1 *= frag.HartreeToEV
			p.MO2 *= frag.HartreeToEV
			l1, err1 := o.Property(energies[2*i])
			l2, err2 := o.Property(energies[2*i+1])
			if err1 == nil && err2 == nil {
				label = strings.TrimPrefix(l1.Label(), "ε ") + " & " + strings.TrimPrefix(l2.Label(), "ε ")
			}
		}
		if 2*i+1 < len(pops) {
			p.Pop1, _ = at(pops[2*i])
			p.Pop2, _ = at(pops[2*i+1])
		}
		if label == "" {
			label = "Not present"
		}
		p.Label = label
		sys.Orbitals = append(sys.Orbitals, p)
	}
	return sys, nil
}
