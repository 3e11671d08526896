/*
 * interpolate.go, part of gofrag.
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

//Package interpolate estimates PyFrag results at points of the reaction coordinate
//that fall between two IRC steps, and runs a simple orbital analysis there.
package interpolate

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	frag "github.com/rmera/gofrag"
)

//Row contains the values of several keys at one point of the reaction coordinate.
type Row struct {
	Name   string
	Point  float64
	Keys   []string //in the order of the results table
	Values map[string]float64
}

//Data interpolates linearly every column of the results of o, except coord itself,
//at the value point of the reaction coordinate coord. It fails if point is outside the
//range covered by coord. Of several points with the same coordinate, only the first
//one, in the order of the results, is used.
func Data(o *frag.Object, coord string, point float64) (*Row, error) {
	x, err := o.XAxis(coord)
	if err != nil {
		return nil, fmt.Errorf("interpolate.Data: %w", err)
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("interpolate.Data: %s: %s", o.Name, frag.NotEnoughPoints)
	}
	if point < floats.Min(x) || point > floats.Max(x) {
		return nil, fmt.Errorf("interpolate.Data: %s: %s: %g not in [%g, %g]", o.Name, frag.OutOfRange, point, floats.Min(x), floats.Max(x))
	}
	//interp needs strictly increasing abscissas; IRCs often go the other way.
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return x[order[i]] < x[order[j]] })
	//Repeated coordinates (rounded bond lengths, for instance) keep only their first point.
	uniq := []int{order[0]}
	for _, j := range order[1:] {
		if x[j] != x[uniq[len(uniq)-1]] {
			uniq = append(uniq, j)
		}
	}
	order = uniq
	if len(order) < 2 {
		return nil, fmt.Errorf("interpolate.Data: %s: %s", o.Name, frag.NotEnoughPoints)
	}
	xs := make([]float64, len(order))
	for i, j := range order {
		xs[i] = x[j]
	}
	ret := &Row{Name: o.Name, Point: point, Values: make(map[string]float64)}
	ys := make([]float64, len(order))
	for _, key := range o.Table.Columns() {
		if key == coord {
			continue
		}
		y, err := o.DataOfKey(key)
		if err != nil {
			return nil, fmt.Errorf("interpolate.Data: %w", err)
		}
		for i, j := range order {
			ys[i] = y[j]
		}
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("interpolate.Data: %s, key %s: %w", o.Name, key, err)
		}
		ret.Keys = append(ret.Keys, key)
		ret.Values[key] = pl.Predict(point)
	}
	return ret, nil
}

//nearestTwoPoints returns the indices of the two consecutive points of x between which
//the sign of x-point changes. point must be strictly inside the range of x.
func nearestTwoPoints(x []float64, point float64) ([2]int, error) {
	if len(x) < 2 {
		return [2]int{}, fmt.Errorf("%s", frag.NotEnoughPoints)
	}
	min, max := floats.Min(x), floats.Max(x)
	if point <= min || point >= max {
		return [2]int{}, fmt.Errorf("%s: %g not in (%g, %g). Check that plot_until does not cut the desired point", frag.OutOfRange, point, min, max)
	}
	init := math.Signbit(x[0] - point)
	for i, v := range x {
		d := v - point
		if d == 0 || math.Signbit(d) != init {
			if i == 0 {
				//x[0] == point, can't happen as point is strictly inside the range.
				break
			}
			return [2]int{i - 1, i}, nil
		}
	}
	return [2]int{}, fmt.Errorf("%s: no sign change around %g", frag.OutOfRange, point)
}

//linear solves y = ax + b through (x[0], y[0]) and (x[1], y[1]) and evaluates it at p.
func linear(x, y [2]float64, p float64) float64 {
	a := (y[1] - y[0]) / (x[1] - x[0])
	b := y[0] - a*x[0]
	return a*p + b
}

//PeakPoint returns the largest value of coord at which any of objs reaches the stationary
//point (peak is "min" or "max") of its total energy, plus 1e-5, so it can be used
//as an interpolation point.
func PeakPoint(objs []*frag.Object, coord, peak string) (float64, error) {
	if len(objs) == 0 {
		return 0, fmt.Errorf("interpolate.PeakPoint: no systems given")
	}
	ret := math.Inf(-1)
	for _, o := range objs {
		i, _, err := o.PeakOfKey(frag.DefaultEnergyKey, peak)
		if err != nil {
			return 0, fmt.Errorf("interpolate.PeakPoint: %w", err)
		}
		x, err := o.XAxis(coord)
		if err != nil {
			return 0, fmt.Errorf("interpolate.PeakPoint: %w", err)
		}
		ret = math.Max(ret, x[i])
	}
	return ret + 1e-5, nil
}
