//gofrag reads the results of PyFrag calculations and produces figures, interpolated
//values and summaries from them.
//
//	gofrag plot --name ureas --out plots dir1 dir2
//	gofrag interpolate --at 1.85 dir1 dir2
//	gofrag peaks dir1 dir2
//	gofrag overview --key EnergyTotal dir1 dir2
//
//Settings are read from an INI file given with -c, on top of the built-in ones.
package main

import (
	"context"
	"fmt"
	"os"

	frag "github.com/rmera/gofrag"
)

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gofrag:", err)
		if t := frag.Trace(err); t != "" {
			fmt.Fprintln(os.Stderr, "trace:", t)
		}
		os.Exit(1)
	}
}
