package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	frag "github.com/rmera/gofrag"
)

func newPeaksCmd(a *app) *cobra.Command {
	var (
		key       string
		peak      string
		recursive bool
		coord     string
	)
	cmd := &cobra.Command{
		Use:   "peaks DIR...",
		Short: "Print the stationary point of the energy of each system in DIR...",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(coord)
			if err != nil {
				return err
			}
			if peak == "" {
				peak = s.PeakType
			}
			if peak == "" {
				peak = "max"
			}
			objs, err := a.load(cmd.Context(), args, recursive)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "System\tIRC point\t%s\t%s\n", s.Coord, key)
			values := make([]float64, 0, len(objs))
			for _, o := range objs {
				i, e, err := o.PeakOfKey(key, peak)
				if err != nil {
					return err
				}
				x, err := o.XAxis(s.Coord)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%g\t%.4f\t%.2f\n", o.Name, o.Table.Index()[i], x[i], e)
				values = append(values, e)
			}
			if len(values) > 1 {
				mean, std := stat.MeanStdDev(values, nil)
				fmt.Fprintf(tw, "Mean\t\t\t%.2f (std. dev. %.2f)\n", mean, std)
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&key, "key", frag.DefaultEnergyKey, "term whose stationary point is searched")
	f.StringVar(&peak, "peak", "", "min or max (default: stat_point_type of the settings)")
	f.BoolVarP(&recursive, "recursive", "r", false, "look for PyFrag files up to two levels below each DIR")
	f.StringVar(&coord, "coord", "", "key of the reaction coordinate (default: irc_coord of the settings)")
	return cmd
}
