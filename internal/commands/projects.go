package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plens/internal/models"
	"plens/internal/util"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects in the dataset",
	Long:  `Display every project identifier in the dataset with task counts and total durations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := models.LoadDataset(globalConfig.DataPath)
		if err != nil {
			return err
		}

		ids := dataset.ProjectIDs()
		if len(ids) == 0 {
			fmt.Println("Dataset contains no records.")
			return nil
		}

		fmt.Printf("Dataset: %s (%d records)\n\n", dataset.Path, dataset.Len())

		for _, id := range ids {
			records := dataset.FilterByProject(id)

			var estimated, actual float64
			for _, rec := range records {
				estimated += rec.EstimatedDays
				actual += rec.ActualDays
			}

			color.New(color.FgCyan, color.Bold).Printf("%s\n", id)
			fmt.Printf("\t%d tasks, %s estimated, %s actual", len(records),
				util.FormatDays(estimated), util.FormatDays(actual))
			if actual > estimated {
				color.Red("  (+%s over estimate)\n", util.FormatDays(actual-estimated))
			} else {
				fmt.Println()
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
