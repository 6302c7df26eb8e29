package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plens/internal/history"
	"plens/internal/models"
	"plens/internal/util"
)

var (
	historyLimit int
	historyFull  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [project-id]",
	Short: "Show past analyses",
	Long:  `List previously run analyses, newest first, optionally filtered to one project.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := history.Open(globalConfig.HistoryPath)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()

		store := history.NewStore(db)

		var results []*models.AnalysisResult
		if len(args) == 1 {
			results, err = store.ListByProject(cmd.Context(), args[0], historyLimit)
		} else {
			results, err = store.ListRecent(cmd.Context(), historyLimit)
		}
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No analyses recorded yet. Run 'plens analyze <project-id>' first.")
			return nil
		}

		for _, result := range results {
			color.New(color.FgCyan, color.Bold).Printf("%s  %s  %s\n",
				result.CreatedAt.Local().Format("2006-01-02 15:04"),
				result.ProjectID,
				result.Kind.Title())

			if historyFull {
				fmt.Println(renderMarkdown(result.Response))
			} else {
				fmt.Printf("\t%s\n", util.Truncate(result.Response, 120))
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of analyses to show")
	historyCmd.Flags().BoolVar(&historyFull, "full", false, "show full responses instead of a summary line")
	rootCmd.AddCommand(historyCmd)
}
