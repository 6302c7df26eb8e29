package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plens/internal/analysis"
	"plens/internal/api"
	"plens/internal/config"
	"plens/internal/history"
	"plens/internal/logging"
	"plens/internal/models"
)

var (
	globalConfig *config.Config
	configDir    string
	logger       *zap.Logger
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "plens",
	Short: "Project Lens - AI-assisted project analytics in the terminal",
	Long: `Project Lens (plens) analyzes a CSV of project task records. Pick a
project and an analysis kind (timeline, resource, risk) to get a terminal
chart plus model-generated insights from the Gemini API.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(configDir, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute(cfg *config.Config, dir string) error {
	globalConfig = cfg
	configDir = dir
	return rootCmd.Execute()
}

// newService wires the dataset, API client and history store into an
// analysis service. The returned closer releases the history database.
func newService() (*analysis.Service, func(), error) {
	dataset, err := models.LoadDataset(globalConfig.DataPath)
	if err != nil {
		return nil, nil, err
	}

	client := api.NewClient(api.ClientConfig{
		APIKey:  globalConfig.APIKey,
		BaseURL: globalConfig.BaseURL,
		Model:   globalConfig.Model,
		Timeout: time.Duration(globalConfig.TimeoutSeconds) * time.Second,
	})

	db, err := history.Open(globalConfig.HistoryPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}

	service := analysis.NewService(dataset, client, history.NewStore(db), globalConfig.Model, logger)
	closer := func() { _ = db.Close() }
	return service, closer, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
