package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/gofrag/interpolate"
)

func newInterpolateCmd(a *app) *cobra.Command {
	var (
		at        float64
		atPeak    bool
		recursive bool
		coord     string
	)
	cmd := &cobra.Command{
		Use:   "interpolate DIR...",
		Short: "Interpolate the results of the systems in DIR... at a point of the reaction coordinate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("at") == atPeak {
				return fmt.Errorf("give exactly one of --at and --at-peak")
			}
			s, err := a.settings(coord)
			if err != nil {
				return err
			}
			objs, err := a.load(cmd.Context(), args, recursive)
			if err != nil {
				return err
			}
			if atPeak {
				peak := s.PeakType
				if peak == "" {
					peak = "max"
				}
				if at, err = interpolate.PeakPoint(objs, s.Coord, peak); err != nil {
					return err
				}
			}
			sys := interpolate.New(objs, s.Coord, at, interpolate.Keys{ASM: s.ASMKeys, Strain: s.StrainKeys, EDA: s.EDAKeys})
			if err := sys.Run(); err != nil {
				return err
			}
			return sys.WriteReport(cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.Float64Var(&at, "at", 0, "value of the reaction coordinate")
	f.BoolVar(&atPeak, "at-peak", false, "interpolate just past the stationary point of the system that reaches it last")
	f.BoolVarP(&recursive, "recursive", "r", false, "look for PyFrag files up to two levels below each DIR")
	f.StringVar(&coord, "coord", "", "key of the reaction coordinate (default: irc_coord of the settings)")
	return cmd
}
