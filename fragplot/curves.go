/*
 * curves.go, part of gofrag.
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
	"strings"

	"go.uber.org/zap"

	frag "github.com/rmera/gofrag"
)

//presentKeys returns the keys that all of objs have. Missing keys are
//logged and left out.
func presentKeys(objs []*frag.Object, keys []string) []string {
	var ret []string
	for _, k := range keys {
		ok := true
		for _, o := range objs {
			if _, err := o.DataOfKey(k); err != nil {
				zap.L().Warn("key not present, not plotted", zap.String("system", o.Name), zap.String("key", k))
				ok = false
				break
			}
		}
		if ok {
			ret = append(ret, k)
		}
	}
	return ret
}

func kindCurves(k frag.Keyword) curvesFunc {
	return func(o *frag.Object) ([]curve, error) {
		return keyCurves(o.KeysOfKind(k))(o)
	}
}

//pairLabel joins the labels of two orbital energies, without the ε.
func pairLabel(o *frag.Object, k1, k2 string) string {
	labels, err := o.PlotLabels(k1, k2)
	if err != nil {
		return k1 + " / " + k2
	}
	return strings.TrimPrefix(labels[0], "ε ") + " / " + strings.TrimPrefix(labels[1], "ε ")
}

//gapCurves gives the energy gap, in eV, between the orbital energies 2n-1 and 2n.
func gapCurves(o *frag.Object) ([]curve, error) {
	keys := o.OrbitalEnergyKeys()
	var ret []curve
	for n := 0; 2*n+1 < len(keys); n++ {
		gap, err := o.EnergyGap(keys[2*n], keys[2*n+1])
		if err != nil {
			return nil, err
		}
		ret = append(ret, curve{label: "Δε " + pairLabel(o, keys[2*n], keys[2*n+1]), y: gap})
	}
	return ret, nil
}

//stabilizationCurves gives S²/Δε for the n-th overlap and the orbital energies 2n-1 and 2n.
func stabilizationCurves(o *frag.Object) ([]curve, error) {
	overlaps := o.OverlapKeys()
	energies := o.OrbitalEnergyKeys()
	var ret []curve
	for n := 0; n < len(overlaps) && 2*n+1 < len(energies); n++ {
		st, err := o.Stabilization(overlaps[n], energies[2*n], energies[2*n+1])
		if err != nil {
			return nil, err
		}
		label := overlaps[n]
		if l, err := o.PlotLabels(overlaps[n]); err == nil {
			label = l[0]
		}
		ret = append(ret, curve{label: label + "²/Δε", y: st})
	}
	return ret, nil
}
