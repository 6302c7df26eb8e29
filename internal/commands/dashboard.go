package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plens/internal/models"
	"plens/internal/ui"
	"plens/internal/watch"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Launch the full-screen dashboard: browse projects, trigger analyses
and read model insights without leaving the terminal. The dataset is
reloaded automatically when the CSV file changes on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, closer, err := newService()
		if err != nil {
			return err
		}
		defer closer()

		p := tea.NewProgram(ui.NewModel(service), tea.WithAltScreen())

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		watcher, err := watch.NewDatasetWatcher(globalConfig.DataPath, 500*time.Millisecond, func() {
			dataset, err := models.LoadDataset(globalConfig.DataPath)
			p.Send(ui.DatasetReloadedMsg{Dataset: dataset, Err: err})
		})
		if err != nil {
			// The dashboard still works without live reload
			logger.Warn("dataset watcher unavailable", zap.Error(err))
		} else {
			go func() {
				if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
					logger.Warn("dataset watcher stopped", zap.Error(err))
				}
			}()
		}

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard error: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
