/*
 * input.go, part of gofrag.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

//Keyword identifies the kind of extra property requested in a PyFrag input file.
type Keyword int

//Keywords that can appear in the PyFrag section of an input file.
const (
	BondlengthKey Keyword = iota
	AngleKey
	DihedralKey
	OverlapKey
	PopulationKey
	OrbitalEnergyKey
	VDDKey
	IrrepKey
	NumKeys
)

//String returns the name of the keyword as used in the column headers of the results file.
func (k Keyword) String() string {
	return [...]string{
		"bondlength",
		"angle",
		"dihedral",
		"overlap",
		"population",
		"orbitalenergy",
		"vdd",
		"IrrepOI",
	}[k]
}

type keywordRegexp struct {
	*regexp.Regexp
	Name Keyword
}

var keywords = []keywordRegexp{
	{regexp.MustCompile(`(?i)^\s*bondlength\b`), BondlengthKey},
	{regexp.MustCompile(`(?i)^\s*angle\b`), AngleKey},
	{regexp.MustCompile(`(?i)^\s*dihedral\b`), DihedralKey},
	{regexp.MustCompile(`(?i)^\s*overlap\b`), OverlapKey},
	{regexp.MustCompile(`(?i)^\s*population\b`), PopulationKey},
	{regexp.MustCompile(`(?i)^\s*orbitalenergy\b`), OrbitalEnergyKey},
	{regexp.MustCompile(`(?i)^\s*vdd\b`), VDDKey},
	{regexp.MustCompile(`(?i)^\s*irrep(oi)?\b`), IrrepKey},
}

var (
	sectionStart = regexp.MustCompile(`(?i)^\s*PyFrag\s*$`)
	sectionEnd   = regexp.MustCompile(`(?i)^\s*PyFrag\s+END\s*$`)
)

//Input contains the extra properties requested in the PyFrag section of an input file,
//in the order in which they appear there.
type Input struct {
	Name            string //the base name of the input file, without extension
	Bondlengths     []Bondlength
	Angles          []BondAngle
	Dihedrals       []DihedralAngle
	Overlaps        []Overlap
	Populations     []Population
	OrbitalEnergies []OrbitalEnergy
	VDDs            []VDD
	Irreps          []Irrep
}

//Count returns the number of properties of kind k.
func (in *Input) Count(k Keyword) int {
	switch k {
	case BondlengthKey:
		return len(in.Bondlengths)
	case AngleKey:
		return len(in.Angles)
	case DihedralKey:
		return len(in.Dihedrals)
	case OverlapKey:
		return len(in.Overlaps)
	case PopulationKey:
		return len(in.Populations)
	case OrbitalEnergyKey:
		return len(in.OrbitalEnergies)
	case VDDKey:
		return len(in.VDDs)
	case IrrepKey:
		return len(in.Irreps)
	}
	return 0
}

//Keys returns the names under which the properties are known, such as "overlap_1",
//"overlap_2". A kind that appears only once is named without suffix ("bondlength").
func (in *Input) Keys() []string {
	var keys []string
	for k := Keyword(0); k < NumKeys; k++ {
		n := in.Count(k)
		if n == 1 {
			keys = append(keys, k.String())
			continue
		}
		for i := 1; i <= n; i++ {
			keys = append(keys, fmt.Sprintf("%s_%d", k, i))
		}
	}
	return keys
}

//ReadInputFile reads the PyFrag section of the input file filename.
func ReadInputFile(filename string) (*Input, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, newInputError(UnableToOpen, "filename", filename, "ReadInputFile", err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	in, err := ReadInput(f, name)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) {
			ie.filename = filename
		}
		return nil, errDecorate(err, "ReadInputFile")
	}
	return in, nil
}

//ReadInput reads the PyFrag section from r. The returned Input is named name.
func ReadInput(r io.Reader, name string) (*Input, error) {
	lines, err := pyfragSection(r)
	if err != nil {
		return nil, err
	}
	in := &Input{Name: name}
	for _, line := range lines {
		for _, kw := range keywords {
			if !kw.MatchString(line) {
				continue
			}
			if err := in.addLine(kw.Name, strings.Fields(line)); err != nil {
				return nil, errDecorate(err, "ReadInput")
			}
			break
		}
	}
	return in, nil
}

//pyfragSection returns the lines between "PyFrag" and "PyFrag END".
func pyfragSection(r io.Reader) ([]string, error) {
	var lines []string
	started, ended := false, false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !started {
			started = sectionStart.MatchString(line)
			continue
		}
		if sectionEnd.MatchString(line) {
			ended = true
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, newInputError(err.Error(), "PyFrag section", "", "pyfragSection", err)
	}
	if !started || !ended {
		return nil, newInputError("Check that the lines 'PyFrag' and 'PyFrag END' are present", "PyFrag section", "", "pyfragSection", ErrNoPyFragSection)
	}
	return lines, nil
}

func checkLength(fields []string, k Keyword, allowed ...int) error {
	for _, v := range allowed {
		if len(fields) == v {
			return nil
		}
	}
	return newInputError(fmt.Sprintf("%s: got %d, expected one of %v", WrongFieldCount, len(fields), allowed), k.String(), "", "checkLength")
}

func atoi(fields []string, k Keyword) ([]int, error) {
	ret := make([]int, len(fields))
	for i, v := range fields {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, newInputError(NotAnAtomIndex, k.String(), "", "atoi", err)
		}
		ret[i] = n
	}
	return ret, nil
}

//optionalFloat parses fields[i] if present, or returns 0.
func optionalFloat(fields []string, i int, k Keyword) (float64, error) {
	if len(fields) <= i {
		return 0, nil
	}
	v, err := strconv.ParseFloat(fields[i], 64)
	if err != nil {
		return 0, newInputError(err.Error(), k.String(), "", "optionalFloat", err)
	}
	return v, nil
}

//addLine parses one line of the PyFrag section, already split in fields, the first of which is the keyword.
func (in *Input) addLine(k Keyword, fields []string) error {
	switch k {
	case BondlengthKey, AngleKey:
		if err := checkLength(fields, k, 3, 4); err != nil {
			return err
		}
		atoms, err := atoi(fields[1:3], k)
		if err != nil {
			return err
		}
		v, err := optionalFloat(fields, 3, k)
		if err != nil {
			return err
		}
		if k == BondlengthKey {
			in.Bondlengths = append(in.Bondlengths, Bondlength{atoms[0], atoms[1], v})
		} else {
			in.Angles = append(in.Angles, BondAngle{atoms[0], atoms[1], v})
		}
	case DihedralKey:
		if err := checkLength(fields, k, 4, 5); err != nil {
			return err
		}
		atoms, err := atoi(fields[1:4], k)
		if err != nil {
			return err
		}
		v, err := optionalFloat(fields, 4, k)
		if err != nil {
			return err
		}
		in.Dihedrals = append(in.Dihedrals, DihedralAngle{atoms[0], atoms[1], atoms[2], v})
	case OverlapKey:
		if err := checkLength(fields, k, 5, 7); err != nil {
			return err
		}
		if len(fields) == 5 {
			if fields[1] != "frag1" || fields[3] != "frag2" {
				return newInputError(OverlapFragments, k.String(), "", "addLine")
			}
			in.Overlaps = append(in.Overlaps, Overlap{Frag1: fields[1], Orbital1: fields[2], Frag2: fields[3], Orbital2: fields[4]})
			break
		}
		in.Overlaps = append(in.Overlaps, Overlap{
			Irrep1: fields[1], Frag1: fields[2], Orbital1: fields[3],
			Irrep2: fields[4], Frag2: fields[5], Orbital2: fields[6],
		})
	case PopulationKey, OrbitalEnergyKey:
		if err := checkLength(fields, k, 3, 4); err != nil {
			return err
		}
		var frag, orb, irrep string
		if len(fields) == 3 {
			frag, orb = fields[1], fields[2]
		} else {
			irrep, frag, orb = fields[1], fields[2], fields[3]
		}
		if k == PopulationKey {
			in.Populations = append(in.Populations, Population{Frag: frag, Orbital: orb, Irrep: irrep})
		} else {
			in.OrbitalEnergies = append(in.OrbitalEnergies, OrbitalEnergy{Frag: frag, Orbital: orb, Irrep: irrep})
		}
	case VDDKey:
		if len(fields) < 2 {
			return newInputError(VDDSpacing, k.String(), "", "addLine")
		}
		atoms, err := atoi(fields[1:], k)
		if err != nil {
			return newInputError(VDDSpacing, k.String(), "", "addLine", err)
		}
		for _, a := range atoms {
			in.VDDs = append(in.VDDs, VDD{a})
		}
	case IrrepKey:
		if err := checkLength(fields, k, 2); err != nil {
			return err
		}
		in.Irreps = append(in.Irreps, Irrep{fields[1]})
	default:
		return newInputError(UnknownProperty, k.String(), "", "addLine")
	}
	return nil
}
