package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/tilerunner/entity"
	"github.com/milk9111/tilerunner/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	campaign, err := levels.Default()
	if err != nil {
		return err
	}

	registry := entity.Registry()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s %-8s %-10s %s\n", "ID", "Size", "Background", "Unknown tiles")
	for _, d := range campaign.Levels() {
		unknown := 0
		for _, col := range d.Data {
			for _, name := range col {
				if _, ok := registry[name]; name != "" && !ok {
					unknown++
				}
			}
		}
		fmt.Fprintf(out, "  %-4d %-8s %-10d %d\n", d.ID, fmt.Sprintf("%dx%d", d.Width, d.Height), d.Background, unknown)
	}
	return nil
}
