/*
 * properties.go, part of gofrag.
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
	"strconv"
	"strings"
)

//Property is an extra quantity requested in the PyFrag section of an input file
//(a bond length, an overlap, a population...). Label returns the text used for it in plots.
type Property interface {
	Label() string
}

//Bondlength between two atoms. Length is the equilibrium value given in the input, or 0.
type Bondlength struct {
	Atom1, Atom2 int
	Length       float64
}

func (b Bondlength) Label() string { return fmt.Sprintf("r %d-%d", b.Atom1, b.Atom2) }

//BondAngle between two atoms, as PyFrag defines it.
type BondAngle struct {
	Atom1, Atom2 int
	Angle        float64
}

func (b BondAngle) Label() string { return fmt.Sprintf("θ%d-%d", b.Atom1, b.Atom2) }

//DihedralAngle defined by three atoms.
type DihedralAngle struct {
	Atom1, Atom2, Atom3 int
	Angle               float64
}

func (d DihedralAngle) Label() string {
	return fmt.Sprintf("φ%d-%d-%d", d.Atom1, d.Atom2, d.Atom3)
}

//Overlap between two fragment orbitals. Orbitals can be given by name (HOMO, LUMO-1...)
//or, when Irrep1 and Irrep2 are set, by their index in an irreducible representation.
type Overlap struct {
	Frag1, Frag2   string
	Orbital1       string
	Orbital2       string
	Irrep1, Irrep2 string
}

func (o Overlap) Label() string {
	if o.Irrep1 == "" && o.Irrep2 == "" {
		return fmt.Sprintf("S %s-%s", o.Orbital1, o.Orbital2)
	}
	return fmt.Sprintf("S %s %s-%s %s", o.Irrep1, o.Orbital1, o.Irrep2, o.Orbital2)
}

//Population is the gross population of a fragment orbital.
type Population struct {
	Frag    string
	Orbital string
	Irrep   string
}

func (p Population) Label() string {
	return strings.TrimSpace(fmt.Sprintf("Pop %s %s %s", p.Frag, p.Orbital, p.Irrep))
}

//OrbitalEnergy is the energy of a fragment orbital.
type OrbitalEnergy struct {
	Frag    string
	Orbital string
	Irrep   string
}

func (o OrbitalEnergy) Label() string {
	return strings.TrimSpace(fmt.Sprintf("ε %s %s %s", o.Frag, o.Orbital, o.Irrep))
}

//VDD is the Voronoi deformation density charge of one atom.
type VDD struct {
	Atom int
}

func (v VDD) Label() string { return "VDD " + strconv.Itoa(v.Atom) }

//Irrep is an irreducible representation for which the orbital interaction is decomposed.
type Irrep struct {
	Name string
}

func (i Irrep) Label() string { return i.Name }
