package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-drift/pulltoload/pkg/pull"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List load modes and what each one enables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), modesTable())
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

func modesTable() string {
	t := newTable("mode", "pull", "start", "end", "header", "footer", "over start", "over end", "auto", "auto footer")
	for _, m := range pull.LoadModes() {
		t.Row(m.String(),
			yesNo(m.IsPullToLoad()),
			yesNo(m.IsPullFromStart()),
			yesNo(m.IsPullFromEnd()),
			yesNo(m.ShouldShowHeader()),
			yesNo(m.ShouldShowFooter()),
			yesNo(m.CanOverScrollStart()),
			yesNo(m.CanOverScrollEnd()),
			yesNo(m.IsAutoLoadMore()),
			yesNo(m.ShouldShowAutoLoadMoreFooter()),
		)
	}
	return t.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
