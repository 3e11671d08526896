package main

import (
	"fmt"

	"github.com/spf13/cobra"

	frag "github.com/rmera/gofrag"
	"github.com/rmera/gofrag/overview"
)

func newOverviewCmd(a *app) *cobra.Command {
	var (
		key       string
		out       string
		recursive bool
		coord     string
	)
	cmd := &cobra.Command{
		Use:   "overview DIR...",
		Short: "Draw a quick chart of one term of the systems in DIR...",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(coord)
			if err != nil {
				return err
			}
			objs, err := a.load(cmd.Context(), args, recursive)
			if err != nil {
				return err
			}
			if err := overview.RenderFile(out, objs, s.Coord, key); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&key, "key", frag.DefaultEnergyKey, "term to draw")
	f.StringVarP(&out, "out", "o", "overview.png", "PNG file to write")
	f.BoolVarP(&recursive, "recursive", "r", false, "look for PyFrag files up to two levels below each DIR")
	f.StringVar(&coord, "coord", "", "key of the reaction coordinate (default: irc_coord of the settings)")
	return cmd
}
