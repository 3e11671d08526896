/*
 * report.go, part of gofrag.
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
	"bufio"
	"fmt"
	"io"
	"strings"
)

//WriteReport writes the results of Run to w, as comma-separated blocks: the points used for
//each system, then the ASM, strain and EDA terms, and the orbital analysis.
//Terms missing in a system are written as "-".
func (s *Systems) WriteReport(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%s  Interpolation at %.2f A  %s\n", strings.Repeat("-", 10), s.Point, strings.Repeat("-", 10))
	fmt.Fprintln(b, "System,index,coord1,coord2")
	for _, r := range s.Results {
		fmt.Fprintf(b, "%s,[%d %d],%.3f,%.3f\n", r.Name, r.Indices[0]+1, r.Indices[1]+1, r.Coords[0], r.Coords[1])
	}
	blocks := []struct {
		title string
		keys  []string
	}{
		{"ASM", s.Keys.ASM},
		{"Extra Strain Decomposition", s.Keys.Strain},
		{"EDA", s.Keys.EDA},
	}
	for _, bl := range blocks {
		if len(bl.keys) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n%s\n", bl.title)
		fmt.Fprintf(b, "System,%s\n", strings.Join(bl.keys, ","))
		for _, r := range s.Results {
			fields := make([]string, 0, len(bl.keys)+1)
			fields = append(fields, r.Name)
			for _, k := range bl.keys {
				v, ok := r.Values[k]
				if !ok {
					fields = append(fields, "-")
					continue
				}
				fields = append(fields, fmt.Sprintf("%.2f", v))
			}
			fmt.Fprintln(b, strings.Join(fields, ","))
		}
	}
	npairs := 0
	for _, r := range s.Results {
		if len(r.Orbitals) > npairs {
			npairs = len(r.Orbitals)
		}
	}
	if npairs > 0 {
		fmt.Fprintln(b, "\nOrbital Analysis")
	}
	for i := 0; i < npairs; i++ {
		fmt.Fprintf(b, "#%d\n", i+1)
		fmt.Fprintln(b, "System, MO pair, Gross pop (electrons), E MO1 (eV), E MO2 (eV), Energy gap (eV), Overlap (au), Stabilization [S²/ε x 100] (1/eV)")
		for _, r := range s.Results {
			if i >= len(r.Orbitals) {
				fmt.Fprintf(b, "%s,Not present,-,-,-,-,-,-\n", r.Name)
				continue
			}
			p := r.Orbitals[i]
			fmt.Fprintf(b, "%s,%s,%.2f %.2f,%.2f,%.2f,%.2f,%.3e,%.4f\n", r.Name, p.Label, p.Pop1, p.Pop2, p.MO1, p.MO2, p.Gap, p.Overlap, p.Stabilization())
		}
	}
	return b.Flush()
}
