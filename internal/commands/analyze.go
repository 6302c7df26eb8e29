package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"plens/internal/charts"
	"plens/internal/models"
)

var analyzeKind string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <project-id>",
	Short: "Run an analysis for one project",
	Long: `Filter the dataset to one project, render the matching chart and ask
the model for insights. The analysis kind is one of timeline, resource
or risk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseKind(analyzeKind)
		if err != nil {
			return err
		}

		service, closer, err := newService()
		if err != nil {
			return err
		}
		defer closer()

		projectID := args[0]
		records := service.Dataset().FilterByProject(projectID)
		if len(records) == 0 {
			color.Yellow("No records found for project %q\n", projectID)
		}

		heading := color.New(color.FgCyan, color.Bold)
		heading.Printf("%s - %s\n\n", kind.Title(), projectID)

		fmt.Println(charts.ForKind(kind, records, 80))

		fmt.Println("Requesting insights...")
		result, err := service.Run(cmd.Context(), models.AnalysisRequest{
			ProjectID: projectID,
			Kind:      kind,
		})
		if err != nil {
			return err
		}

		heading.Println("AI Insights")
		fmt.Println(renderMarkdown(result.Response))

		return nil
	},
}

// renderMarkdown renders model output for the terminal, falling back to
// the raw text when the renderer is unavailable.
func renderMarkdown(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to render markdown: %v\n", err)
		return text
	}
	return rendered
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeKind, "kind", "k", "timeline", "analysis kind: timeline, resource or risk")
	rootCmd.AddCommand(analyzeCmd)
}
