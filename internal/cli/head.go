package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var headRows int

var headCmd = &cobra.Command{
	Use:   "head FILE",
	Short: "Print the schema and the first rows of a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _, err := open(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d rows)\n", ds.Path(), ds.NumRows())
		for _, f := range ds.Schema() {
			fmt.Fprintf(out, "  %-20s %s\n", f.Name, f.Kind)
		}
		n := min(max(headRows, 0), ds.NumRows())
		if n > 0 && ds.NumDims() > 0 {
			idx := make([]int, n)
			for i := range idx {
				idx[i] = i
			}
			fmt.Fprintln(out, ds.Frame().Subset(idx).String())
		}
		return nil
	},
}

func init() {
	headCmd.Flags().IntVarP(&headRows, "rows", "n", 5, "number of rows to print")
	rootCmd.AddCommand(headCmd)
}
