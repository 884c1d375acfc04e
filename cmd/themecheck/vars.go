package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phyten/themecheck/internal/cssvars"
)

const unresolved = "(unresolved)"

func newVarsCmd(a *app) *cobra.Command {
	var resolve bool
	cmd := &cobra.Command{
		Use:   "vars FILE",
		Short: "List the custom properties declared in a stylesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := cssvars.Load(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(a.stdout, 2, 4, 2, ' ', 0)
			if resolve {
				fmt.Fprintln(w, "NAME\tVALUE\tRESOLVED")
			} else {
				fmt.Fprintln(w, "NAME\tVALUE")
			}
			for _, name := range table.Names() {
				raw, _ := table.Lookup(name)
				if !resolve {
					fmt.Fprintf(w, "%s\t%s\n", name, raw)
					continue
				}
				resolved, err := table.Resolve(name)
				if err != nil {
					resolved = unresolved
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, raw, resolved)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&resolve, "resolve", false, "also print each value with var() references followed")
	return cmd
}
