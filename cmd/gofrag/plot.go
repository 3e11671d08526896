package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	frag "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/config"
	"github.com/rmera/gofrag/fragplot"
	"github.com/rmera/gofrag/interpolate"
)

//summaryFile is written next to the figures.
const summaryFile = "result.txt"

type plotOptions struct {
	name        string
	out         string
	solo        bool
	multi       bool
	interpolate string
	recursive   bool
	coord       string
}

func newPlotCmd(a *app) *cobra.Command {
	var o plotOptions
	cmd := &cobra.Command{
		Use:   "plot DIR...",
		Short: "Draw the ASM, EDA and orbital figures of the systems in DIR...",
		Long: `Draw the figures of the PyFrag calculations found in each DIR.
With --multi (the default), the systems are compared in figures written to OUT/NAME.
With --solo, each system also gets its own figures, in OUT/<system>.
A summary of the run is written to result.txt. With --interpolate, the systems are also
interpolated at the given value of the reaction coordinate, or at the stationary point
of the system that reaches it last ("peak"), and the results added to the summary.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.plot(cmd, args, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.name, "name", "multi", "name of the comparison, used as the name of its directory")
	f.StringVarP(&o.out, "out", "o", "plots", "directory for the figures")
	f.BoolVar(&o.solo, "solo", false, "draw the figures of each system on its own")
	f.BoolVar(&o.multi, "multi", true, "draw the figures comparing all the systems")
	f.StringVar(&o.interpolate, "interpolate", "", `interpolate at this value of the reaction coordinate, or at "peak"`)
	f.BoolVarP(&o.recursive, "recursive", "r", false, "look for PyFrag files up to two levels below each DIR")
	f.StringVar(&o.coord, "coord", "", "key of the reaction coordinate (default: irc_coord of the settings)")
	return cmd
}

//interpolationPoint parses the --interpolate flag. An empty value means no interpolation.
func interpolationPoint(value string, objs []*frag.Object, coord, peak string) (float64, bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return 0, false, nil
	case "peak":
		p, err := interpolate.PeakPoint(objs, coord, peak)
		return p, err == nil, err
	}
	p, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, fmt.Errorf(`interpolation point %q is not a number or "peak"`, value)
	}
	return p, true, nil
}

func (a *app) plot(cmd *cobra.Command, dirs []string, o plotOptions) error {
	s, err := a.settings(o.coord)
	if err != nil {
		return err
	}
	objs, err := a.load(cmd.Context(), dirs, o.recursive)
	if err != nil {
		return err
	}
	peak := s.PeakType
	if peak == "" {
		peak = "max"
	}
	point, interp, err := interpolationPoint(o.interpolate, objs, s.Coord, peak)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	var written []string
	if o.solo {
		for _, obj := range objs {
			sp, err := fragplot.NewSoloPlotter(o.out, obj, s)
			if err != nil {
				return err
			}
			names, err := sp.Plot()
			if err != nil {
				return fmt.Errorf("plotting %s: %w", obj.Name, err)
			}
			written = append(written, names...)
		}
	}
	summaryDir := o.out
	if o.multi {
		m, err := fragplot.NewMultiPlotter(o.name, o.out, objs, s)
		if err != nil {
			return err
		}
		names, err := m.Plot()
		if err != nil {
			return fmt.Errorf("plotting %s: %w", o.name, err)
		}
		written = append(written, names...)
		summaryDir = m.Dir
	}
	for _, n := range written {
		fmt.Fprintln(out, n)
	}
	getLogger().Info("Figures written", zap.Int("figures", len(written)))

	label, err := a.cfg.String(config.Shared, "irc_coord_label")
	if err != nil {
		return err
	}
	sum := frag.Summary{
		Solo:        o.solo,
		Multi:       o.multi,
		Interpolate: interp,
		Point:       point,
		Coord:       s.Coord,
		CoordLabel:  label,
		OutputDir:   o.out,
		StatPoint:   s.PeakType,
		Systems:     objs,
	}
	if sum.StatPoint == "" {
		sum.StatPoint = "none"
	}
	if err := os.MkdirAll(summaryDir, 0o755); err != nil {
		return err
	}
	name := filepath.Join(summaryDir, summaryFile)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := sum.Write(w); err != nil {
		return err
	}
	if interp {
		sys := interpolate.New(objs, s.Coord, point, interpolate.Keys{ASM: s.ASMKeys, Strain: s.StrainKeys, EDA: s.EDAKeys})
		if err := sys.Run(); err != nil {
			return err
		}
		if err := sys.WriteReport(w); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, name)
	return f.Close()
}
