package frag

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInputFile(Te *testing.T) {
	in, err := ReadInputFile("testdata/ureas_O/ureas_O.in")
	require.NoError(Te, err)

	assert.Equal(Te, "ureas_O", in.Name)
	assert.Equal(Te, []Bondlength{{1, 6, 1.58}}, in.Bondlengths)
	assert.Equal(Te, []Overlap{{Frag1: "frag1", Orbital1: "HOMO", Frag2: "frag2", Orbital2: "LUMO"}}, in.Overlaps)
	assert.Equal(Te, []Population{{Frag: "frag1", Orbital: "HOMO"}, {Frag: "frag2", Orbital: "LUMO"}}, in.Populations)
	assert.Len(Te, in.OrbitalEnergies, 2)
	assert.Equal(Te, []Irrep{{"AA"}}, in.Irreps)
	assert.Equal(Te, []string{"bondlength", "overlap", "population_1", "population_2", "orbitalenergy_1", "orbitalenergy_2", "IrrepOI"}, in.Keys())
}

func section(lines ...string) string {
	return "Some header\nPyFrag\n" + strings.Join(lines, "\n") + "\nPyFrag END\ntrailer\n"
}

func TestReadInput(Te *testing.T) {
	Te.Parallel()
	text := section(
		"  BondLength 1 2",
		"bondlength 3 4 1.2",
		"angle 1 2 120",
		"dihedral 1 2 3",
		"overlap S frag1 5 AA frag2 4",
		"population AA frag2 5",
		"orbitalenergy frag1 HOMO-1",
		"vdd 3 6 8",
		"a line that is not a keyword",
	)
	in, err := ReadInput(strings.NewReader(text), "test")
	require.NoError(Te, err)

	assert.Equal(Te, []Bondlength{{1, 2, 0}, {3, 4, 1.2}}, in.Bondlengths)
	assert.Equal(Te, []BondAngle{{1, 2, 120}}, in.Angles)
	assert.Equal(Te, []DihedralAngle{{1, 2, 3, 0}}, in.Dihedrals)
	assert.Equal(Te, Overlap{Irrep1: "S", Frag1: "frag1", Orbital1: "5", Irrep2: "AA", Frag2: "frag2", Orbital2: "4"}, in.Overlaps[0])
	assert.Equal(Te, Population{Frag: "frag2", Orbital: "5", Irrep: "AA"}, in.Populations[0])
	assert.Equal(Te, OrbitalEnergy{Frag: "frag1", Orbital: "HOMO-1"}, in.OrbitalEnergies[0])
	assert.Equal(Te, []VDD{{3}, {6}, {8}}, in.VDDs)
	assert.Equal(Te, []string{"bondlength_1", "bondlength_2", "angle", "dihedral", "overlap", "population", "orbitalenergy", "vdd_1", "vdd_2", "vdd_3"}, in.Keys())
}

func TestReadInputErrors(Te *testing.T) {
	Te.Parallel()
	tests := []struct {
		name string
		line string
		key  string
	}{
		{"bondlength too short", "bondlength 1", "bondlength"},
		{"bondlength too long", "bondlength 1 2 3 4", "bondlength"},
		{"angle not an index", "angle a 2", "angle"},
		{"dihedral too short", "dihedral 1 2", "dihedral"},
		{"overlap wrong length", "overlap frag1 HOMO frag2", "overlap"},
		{"overlap wrong fragment names", "overlap f1 HOMO f2 LUMO", "overlap"},
		{"population too long", "population a b c d", "population"},
		{"vdd with commas", "vdd 1,2,3", "vdd"},
		{"vdd empty", "vdd", "vdd"},
		{"irrep without name", "irrepOI", "IrrepOI"},
	}
	for _, tt := range tests {
		tt := tt
		Te.Run(tt.name, func(Te *testing.T) {
			Te.Parallel()
			_, err := ReadInput(strings.NewReader(section(tt.line)), "test")
			var ierr *InputError
			require.True(Te, errors.As(err, &ierr), "got %v", err)
			assert.Equal(Te, tt.key, ierr.Key)
			assert.True(Te, strings.HasPrefix(err.Error(), tt.key+" is not valid."))
		})
	}
}

func TestReadInputVDDMessage(Te *testing.T) {
	_, err := ReadInput(strings.NewReader(section("vdd 1,2")), "test")
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), VDDSpacing)
}

func TestReadInputNoSection(Te *testing.T) {
	Te.Parallel()
	for _, text := range []string{
		"nothing here\n",
		"PyFrag\nbondlength 1 2\n",
		"bondlength 1 2\nPyFrag END\n",
	} {
		_, err := ReadInput(strings.NewReader(text), "test")
		assert.True(Te, errors.Is(err, ErrNoPyFragSection), "text %q gave %v", text, err)
	}
}

func TestReadInputFileMissing(Te *testing.T) {
	_, err := ReadInputFile("testdata/does_not_exist.in")
	var ierr *InputError
	require.True(Te, errors.As(err, &ierr))
	assert.Equal(Te, "testdata/does_not_exist.in", ierr.FileName())
	assert.Equal(Te, "ReadInputFile", Trace(err))
}

func TestPropertyLabels(Te *testing.T) {
	Te.Parallel()
	assert.Equal(Te, "r 1-6", Bondlength{1, 6, 0}.Label())
	assert.Equal(Te, "θ1-2", BondAngle{1, 2, 0}.Label())
	assert.Equal(Te, "φ1-2-3", DihedralAngle{1, 2, 3, 0}.Label())
	assert.Equal(Te, "S HOMO-LUMO", Overlap{Frag1: "frag1", Orbital1: "HOMO", Frag2: "frag2", Orbital2: "LUMO"}.Label())
	assert.Equal(Te, "S A1 5-A2 4", Overlap{Irrep1: "A1", Orbital1: "5", Irrep2: "A2", Orbital2: "4"}.Label())
	assert.Equal(Te, "Pop frag1 HOMO", Population{Frag: "frag1", Orbital: "HOMO"}.Label())
	assert.Equal(Te, "Pop frag2 5 AA", Population{Frag: "frag2", Orbital: "5", Irrep: "AA"}.Label())
	assert.Equal(Te, "ε frag1 HOMO", OrbitalEnergy{Frag: "frag1", Orbital: "HOMO"}.Label())
	assert.Equal(Te, "VDD 3", VDD{3}.Label())
	assert.Equal(Te, "AA", Irrep{"AA"}.Label())
}
