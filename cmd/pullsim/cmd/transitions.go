package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/pulltoload/pkg/pull"
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions",
	Short: "Print the state transition table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable("from", "trigger", "to")
		for _, tr := range pull.Transitions() {
			t.Row(tr.From.String(), tr.Trigger.String(), tr.To.String())
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
	},
}

func init() {
	rootCmd.AddCommand(transitionsCmd)
}
