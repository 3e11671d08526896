/*
 * object.go, part of gofrag.
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

package frag

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//HartreeToEV converts orbital energies, which PyFrag gives in hartree, to eV.
const HartreeToEV = 27.211

//TermLabels are the plot labels of the standard ASM and EDA terms.
var TermLabels = map[string]string{
	"EnergyTotal": "ΔE",
	"Int":         "ΔEint",
	"StrainTotal": "ΔEstrain",
	"Elstat":      "ΔVelstat",
	"Pauli":       "ΔEPauli",
	"OI":          "ΔEoi",
	"Disp":        "ΔEdisp",
	"frag1Strain": "ΔEstrain frag1",
	"frag2Strain": "ΔEstrain frag2",
}

//Object holds the processed results of one PyFrag calculation together with the
//extra properties requested in its input file.
type Object struct {
	Input
	Table       *Table
	ExtraStrain map[string][]float64 //extra strain curves, by name. May be nil.
	Files       FilePair             //where the data was read from, if it was read from files.
}

//NewObject combines a processed results table and the data read from the input file.
func NewObject(t *Table, in *Input) *Object {
	o := &Object{Table: t}
	if in != nil {
		o.Input = *in
	}
	return o
}

//DataOfKey returns the values of the column key, or of the extra strain curve key.
func (o *Object) DataOfKey(key string) ([]float64, error) {
	if o.Table.Has(key) {
		return o.Table.Column(key)
	}
	if v, ok := o.ExtraStrain[key]; ok {
		if len(v) != o.Table.Len() {
			return nil, newObjectError(fmt.Sprintf("Extra strain curve '%s' of %s has %d points, the results have %d", key, o.Name, len(v), o.Table.Len()), "DataOfKey")
		}
		return append([]float64(nil), v...), nil
	}
	return nil, newObjectError(fmt.Sprintf("Key '%s' not found in the results of %s. Available keys: %v", key, o.Name, o.Table.Columns()), "DataOfKey")
}

//XAxis returns the values of the reaction coordinate coord. The name of the index
//column (usually "IRC") gives the IRC step numbers.
func (o *Object) XAxis(coord string) ([]float64, error) {
	if (o.Table != nil && coord == o.Table.IndexName) || strings.EqualFold(coord, "irc") {
		return o.Table.Index(), nil
	}
	x, err := o.DataOfKey(coord)
	return x, errDecorate(err, "XAxis")
}

//PlotLabels returns the labels used in plots for keys. Standard terms get the
//labels in TermLabels, numbered properties ("overlap_2") get the label of
//the property as given in the input file.
func (o *Object) PlotLabels(keys ...string) ([]string, error) {
	ret := make([]string, 0, len(keys))
	for _, k := range keys {
		if l, ok := TermLabels[k]; ok {
			ret = append(ret, l)
			continue
		}
		if _, ok := o.ExtraStrain[k]; ok {
			ret = append(ret, k)
			continue
		}
		p, err := o.Property(k)
		if err != nil {
			return nil, errDecorate(err, "PlotLabels")
		}
		ret = append(ret, p.Label())
	}
	return ret, nil
}

//SplitKey splits a key like "overlap_2" in its kind and its 1-based number.
//Keys without a numeric suffix get number 1.
func SplitKey(key string) (Keyword, int, bool) {
	name, num := key, 1
	if i := strings.LastIndex(key, "_"); i > 0 {
		n, err := strconv.Atoi(key[i+1:])
		if err == nil {
			name, num = key[:i], n
		}
	}
	for k := Keyword(0); k < NumKeys; k++ {
		if strings.EqualFold(name, k.String()) {
			return k, num, true
		}
	}
	return 0, 0, false
}

//Property returns the property requested in the input file that corresponds to key.
func (o *Object) Property(key string) (Property, error) {
	k, n, ok := SplitKey(key)
	if !ok {
		return nil, newObjectError(fmt.Sprintf("Key '%s' does not correspond to a known term or property", key), "Property")
	}
	if n < 1 || n > o.Count(k) {
		return nil, newObjectError(fmt.Sprintf("Key '%s' refers to %s number %d, but %s has %d", key, k, n, o.Name, o.Count(k)), "Property")
	}
	i := n - 1
	switch k {
	case BondlengthKey:
		return o.Bondlengths[i], nil
	case AngleKey:
		return o.Angles[i], nil
	case DihedralKey:
		return o.Dihedrals[i], nil
	case OverlapKey:
		return o.Overlaps[i], nil
	case PopulationKey:
		return o.Populations[i], nil
	case OrbitalEnergyKey:
		return o.OrbitalEnergies[i], nil
	case VDDKey:
		return o.VDDs[i], nil
	}
	return o.Irreps[i], nil
}

//PeakOfKey returns the index and value of the maximum of key, if peak is "max",
//or of its minimum otherwise.
func (o *Object) PeakOfKey(key, peak string) (int, float64, error) {
	data, err := o.DataOfKey(key)
	if err != nil {
		return 0, 0, errDecorate(err, "PeakOfKey")
	}
	if len(data) == 0 {
		return 0, 0, newObjectError(fmt.Sprintf("No data for key '%s' in %s", key, o.Name), "PeakOfKey")
	}
	i := floats.MinIdx(data)
	if strings.EqualFold(peak, "max") {
		i = floats.MaxIdx(data)
	}
	return i, data[i], nil
}

//PeakInfo returns the values of all the columns at the peak (see PeakOfKey) of key.
//The index value is included under the index name.
func (o *Object) PeakInfo(key, peak string) (map[string]float64, error) {
	i, _, err := o.PeakOfKey(key, peak)
	if err != nil {
		return nil, errDecorate(err, "PeakInfo")
	}
	ret := o.Table.Row(i)
	ret[o.Table.IndexName] = o.Table.Index()[i]
	return ret, nil
}

//EnergyGap returns |e1-e2| in eV, point by point, for two orbital energy keys.
func (o *Object) EnergyGap(key1, key2 string) ([]float64, error) {
	e1, err := o.DataOfKey(key1)
	if err != nil {
		return nil, errDecorate(err, "EnergyGap")
	}
	e2, err := o.DataOfKey(key2)
	if err != nil {
		return nil, errDecorate(err, "EnergyGap")
	}
	floats.Sub(e1, e2)
	for i, v := range e1 {
		e1[i] = math.Abs(v) * HartreeToEV
	}
	return e1, nil
}

//Stabilization returns S²/gap (in 1/eV) for the overlap overlapKey and the orbital energies
//e1 and e2, point by point. Points with a zero gap give 0.
func (o *Object) Stabilization(overlapKey, e1, e2 string) ([]float64, error) {
	gap, err := o.EnergyGap(e1, e2)
	if err != nil {
		return nil, errDecorate(err, "Stabilization")
	}
	s, err := o.DataOfKey(overlapKey)
	if err != nil {
		return nil, errDecorate(err, "Stabilization")
	}
	for i, v := range s {
		if gap[i] == 0 {
			s[i] = 0
			continue
		}
		s[i] = v * v / gap[i]
	}
	return s, nil
}

//KeysOfKind returns the columns of the table holding properties of kind k,
//ordered by their number.
func (o *Object) KeysOfKind(k Keyword) []string {
	var keys []string
	for _, c := range o.Table.Columns() {
		if kk, _, ok := SplitKey(c); ok && kk == k {
			keys = append(keys, c)
		}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		_, ni, _ := SplitKey(keys[i])
		_, nj, _ := SplitKey(keys[j])
		return ni < nj
	})
	return keys
}

//OverlapKeys returns the overlap columns, ordered.
func (o *Object) OverlapKeys() []string { return o.KeysOfKind(OverlapKey) }

//PopulationKeys returns the gross population columns, ordered.
func (o *Object) PopulationKeys() []string { return o.KeysOfKind(PopulationKey) }

//OrbitalEnergyKeys returns the orbital energy columns, ordered.
func (o *Object) OrbitalEnergyKeys() []string { return o.KeysOfKind(OrbitalEnergyKey) }
