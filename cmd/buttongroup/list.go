package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"buttongroup/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured button groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(nil)
		if err != nil {
			return err
		}
		cfg.AssignIDs()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "LABEL", "MODE", "VISUALIZATION", "FORM", "DEFAULT", "OPTIONS"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk(widgetRows(cfg))
		table.Render()

		return nil
	},
}

func widgetRows(cfg *config.Config) [][]string {
	var data [][]string
	for _, w := range cfg.Widgets {
		contents := make([]string, 0, len(w.Options))
		for _, o := range w.Options {
			contents = append(contents, o.Content)
		}
		form := w.FormID
		if form == "" {
			form = "-"
		}
		data = append(data, []string{
			w.ID,
			w.Label,
			orDefault(w.ClickMode, "single_select"),
			orDefault(w.SelectionVisualization, "only_selected"),
			form,
			fmt.Sprint(w.Default),
			strings.Join(contents, " "),
		})
	}
	return data
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
