package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var plotTitle string

var scatterCmd = &cobra.Command{
	Use:   "scatter FILE X Y",
	Short: "Render a scatter plot of Y against X",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, a, err := open(args[0])
		if err != nil {
			return err
		}
		title := plotTitle
		if title == "" {
			title = fmt.Sprintf("%s vs. %s", args[2], args[1])
		}
		if _, _, err := a.Scatter(args[1], args[2], title); err != nil {
			return err
		}
		return show(cmd.OutOrStdout(), a)
	},
}

var pairplotCmd = &cobra.Command{
	Use:   "pairplot FILE HEADER HEADER [HEADER...]",
	Short: "Render a pair plot of the given columns",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, a, err := open(args[0])
		if err != nil {
			return err
		}
		if _, _, err := a.PairPlot(args[1:], plotTitle); err != nil {
			return err
		}
		return show(cmd.OutOrStdout(), a)
	},
}

func init() {
	scatterCmd.Flags().StringVarP(&plotTitle, "title", "t", "", "figure title")
	pairplotCmd.Flags().StringVarP(&plotTitle, "title", "t", "", "figure title")
	rootCmd.AddCommand(scatterCmd, pairplotCmd)
}
