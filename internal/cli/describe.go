package cli

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe FILE [HEADER...]",
	Short: "Print descriptive statistics of numeric columns",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, a, err := open(args[0])
		if err != nil {
			return err
		}
		summaries, err := a.Describe(args[1:]...)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "header\tcount\tmissing\tmin\tmax\trange\tmean\tmedian\tvariance\tstd\t")
		for _, s := range summaries {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
				s.Header, s.Count, s.Missing,
				num(s.Min), num(s.Max), num(s.Range), num(s.Mean),
				num(s.Median), num(s.Variance), num(s.Std))
		}
		return w.Flush()
	},
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4g", v)
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
