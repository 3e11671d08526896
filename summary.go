/*
 * summary.go, part of gofrag.
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
	"io"
	"strings"

	"gonum.org/v1/gonum/stat"
)

//Summary describes a plotting run, for the report written next to the figures.
type Summary struct {
	Solo, Multi bool
	Interpolate bool
	Point       float64 //where the data was interpolated, if Interpolate is true
	Coord       string  //the reaction coordinate key
	CoordLabel  string
	OutputDir   string
	StatPoint   string //"min", "max" or "none"
	Systems     []*Object
}

func header(w io.Writer, title string) {
	fmt.Fprintf(w, "%s  %s  %s\n", strings.Repeat("-", 10), title, strings.Repeat("-", 10))
}

//Write writes the summary to w: the settings, the stationary point of each system
//and the locations of the files used.
func (s Summary) Write(w io.Writer) error {
	header(w, "Settings")
	fmt.Fprintf(w, "Solo plot           %t\n", s.Solo)
	fmt.Fprintf(w, "Multi plot          %t\n", s.Multi)
	if s.Interpolate {
		fmt.Fprintf(w, "Interpolate         %.3f\n", s.Point)
	}
	fmt.Fprintf(w, "Reaction coordinate %s\n", s.CoordLabel)
	fmt.Fprintf(w, "Output folder       %s\n\n", s.OutputDir)
	if s.StatPoint != "" && !strings.EqualFold(s.StatPoint, "none") {
		header(w, "Peak Info")
		fmt.Fprintln(w)
		energies := make([]float64, 0, len(s.Systems))
		for _, o := range s.Systems {
			info, err := o.PeakInfo(DefaultEnergyKey, s.StatPoint)
			if err != nil {
				return errDecorate(err, "Summary.Write")
			}
			fmt.Fprintf(w, "%s with %s energy at %-3d at coord = %.4f A with energy %.1f\n",
				o.Name, s.StatPoint, int(info[o.Table.IndexName]), info[s.Coord], info[DefaultEnergyKey])
			energies = append(energies, info[DefaultEnergyKey])
		}
		if len(energies) > 1 {
			mean, std := stat.MeanStdDev(energies, nil)
			fmt.Fprintf(w, "Mean %s energy: %.1f (std. dev. %.1f)\n", s.StatPoint, mean, std)
		}
		fmt.Fprintln(w)
	}
	header(w, "Locations of inputfiles")
	for _, o := range s.Systems {
		fmt.Fprintln(w, o.Files.Input)
	}
	fmt.Fprintln(w)
	header(w, "Locations of resultfiles")
	for _, o := range s.Systems {
		fmt.Fprintln(w, o.Files.Results)
	}
	_, err := fmt.Fprintln(w)
	return err
}
