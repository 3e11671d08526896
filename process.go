/*
 * process.go, part of gofrag.
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

package frag

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	//DefaultEnergyKey is the column used to trim and clean the tables when no other is given.
	DefaultEnergyKey = "EnergyTotal"
	dispersionKey    = "Disp"
	//Values of the dispersion term below this are considered zero.
	dispersionTolerance = 1e-9
)

//TrimKind tells how a TrimParameter cuts a table.
type TrimKind int

const (
	TrimNone     TrimKind = iota //keep everything
	TrimExtremum                 //up to the minimum or maximum of the energy column
	TrimValue                    //up to the point nearest to an energy value
	TrimRows                     //keep the first n rows
)

//TrimParameter tells TrimData where to cut a table. Only the field
//matching Kind is used.
type TrimParameter struct {
	Kind     TrimKind
	Extremum string
	Value    float64
	Rows     int
}

//TrimTo returns a parameter that trims up to the "min" or the "max" of the energy.
func TrimTo(extremum string) TrimParameter {
	return TrimParameter{Kind: TrimExtremum, Extremum: extremum}
}

//TrimAt returns a parameter that trims up to the point where the energy is nearest to v.
func TrimAt(v float64) TrimParameter { return TrimParameter{Kind: TrimValue, Value: v} }

//TrimFirst returns a parameter that keeps only the first n rows.
func TrimFirst(n int) TrimParameter { return TrimParameter{Kind: TrimRows, Rows: n} }

func (p TrimParameter) String() string {
	switch p.Kind {
	case TrimExtremum:
		return p.Extremum
	case TrimValue:
		return strconv.FormatFloat(p.Value, 'g', -1, 64)
	case TrimRows:
		return strconv.Itoa(p.Rows)
	}
	return "none"
}

//ParseTrimParameter interprets s as an integer (number of rows), then as a
//float (energy value) and otherwise as a string ("min" or "max"). The empty string,
//"none", "false", "no" and "0" mean no trimming. Strings other than "min" and "max"
//are accepted here and rejected by TrimData.
func ParseTrimParameter(s string) TrimParameter {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "false", "no", "0":
		return TrimParameter{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return TrimFirst(n)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return TrimAt(v)
	}
	return TrimTo(s)
}

//RemoveDispersionTerm returns t without the "Disp" column if all its values are zero.
//Otherwise, t is returned unchanged.
func RemoveDispersionTerm(t *Table) *Table {
	if t.Len() == 0 || !t.Has(dispersionKey) {
		return t
	}
	disp, _ := t.Column(dispersionKey)
	for _, v := range disp {
		if math.Abs(v) > dispersionTolerance {
			return t
		}
	}
	zap.L().Debug("Removing dispersion term, zero everywhere")
	return t.Drop(dispersionKey)
}

//TrimData cuts t according to p, using the column key (DefaultEnergyKey if empty) when
//the cut depends on energies. Cuts at a given row keep that row.
func TrimData(t *Table, p TrimParameter, key string) (*Table, error) {
	if key == "" {
		key = DefaultEnergyKey
	}
	if p.Kind == TrimNone || t.Len() == 0 {
		return t, nil
	}
	if p.Kind == TrimRows {
		if p.Rows < 0 {
			//a negative number of rows drops that many from the end
			return t.Head(t.Len() + p.Rows), nil
		}
		return t.Head(p.Rows), nil
	}
	energy, err := t.Column(key)
	if err != nil {
		return nil, newProcessingError(fmt.Sprintf("trim_key %s not found in the results", key), "trim_data", "TrimData", err)
	}
	var last int
	switch p.Kind {
	case TrimExtremum:
		switch strings.ToLower(p.Extremum) {
		case "max":
			last = floats.MaxIdx(energy)
		case "min":
			last = floats.MinIdx(energy)
		default:
			return nil, newProcessingError(fmt.Sprintf("trim_option %s is not valid. %s", strings.ToLower(p.Extremum), WrongPeakType), "trim_data_str", "TrimData")
		}
	case TrimValue:
		dist := make([]float64, len(energy))
		for i, v := range energy {
			dist[i] = math.Abs(v - p.Value)
		}
		last = floats.MinIdx(dist)
	default:
		return nil, newProcessingError(fmt.Sprintf("trim_parameter %v is not a valid type", p.Kind), "trim_data", "TrimData")
	}
	return t.Head(last + 1), nil
}

//RemoveOutliers deletes the rows where the column key jumps by at least threshold
//both with respect to the previous kept row and to the next row. The first and last rows
//are never removed. A threshold <= 0 disables the check.
func RemoveOutliers(t *Table, key string, threshold float64) (*Table, error) {
	if key == "" {
		key = DefaultEnergyKey
	}
	if threshold <= 0 || t.Len() < 3 {
		return t, nil
	}
	y, err := t.Column(key)
	if err != nil {
		return nil, newProcessingError(fmt.Sprintf("key %s not found in the results", key), "remove_outliers", "RemoveOutliers", err)
	}
	keep := make([]bool, len(y))
	keep[0], keep[len(y)-1] = true, true
	prev := y[0]
	removed := 0
	for i := 1; i < len(y)-1; i++ {
		if math.Abs(y[i]-prev) >= threshold && math.Abs(y[i]-y[i+1]) >= threshold {
			warn(ProcessingWarning{
				Message: fmt.Sprintf("Removed outlier at row %d (%s = %.4f)", i, key, y[i]),
				Section: "remove_outliers",
			})
			removed++
			continue
		}
		keep[i] = true
		prev = y[i]
	}
	if removed == 0 {
		return t, nil
	}
	return t.rows(func(i int) bool { return keep[i] }), nil
}

//ProcessOptions are the parameters for ProcessResultsFile.
type ProcessOptions struct {
	TrimParameter    TrimParameter
	TrimKey          string  //column used for trimming and outlier removal, DefaultEnergyKey if empty.
	OutlierThreshold float64 //0 disables the outlier removal.
}

//ProcessResultsFile removes the outliers from t, trims it, and drops the dispersion
//column if it is zero everywhere, in that order.
func ProcessResultsFile(t *Table, opts ProcessOptions) (*Table, error) {
	t, err := RemoveOutliers(t, opts.TrimKey, opts.OutlierThreshold)
	if err != nil {
		return nil, errDecorate(err, "ProcessResultsFile")
	}
	t, err = TrimData(t, opts.TrimParameter, opts.TrimKey)
	if err != nil {
		return nil, errDecorate(err, "ProcessResultsFile")
	}
	return RemoveDispersionTerm(t), nil
}
