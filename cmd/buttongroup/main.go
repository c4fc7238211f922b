package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"buttongroup/internal/config"
	"buttongroup/internal/eventbus"
)

var version = "0.1.0"

var (
	configPath string
	logPath    string
	fragmentID string
)

var rootCmd = &cobra.Command{
	Use:   "buttongroup",
	Short: "Terminal host for button group widgets",
	Long: "buttongroup mounts the button groups described in a TOML or YAML file and keeps " +
		"their selections in sync with an in-memory widget state manager.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logPath)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("buttongroup %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml or .yml); defaults to the user config dir")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "buttongroup.log", "log file; empty disables logging")
	rootCmd.PersistentFlags().StringVar(&fragmentID, "fragment", "", "fragment id reported with every write; overrides the config")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging points the standard logger at path
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(logFile)
	return nil
}

// loadConfig loads the file named by --config, or the default location
func loadConfig(bus eventbus.EventBus) (*config.Config, string, error) {
	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(bus)
	} else {
		svc = config.NewConfigService()
	}

	path := configPath
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		path = config.DefaultPath()
		cfg, err = svc.Load()
	} else {
		cfg, err = svc.LoadFromPath(path)
	}
	if err != nil {
		return nil, path, err
	}

	if fragmentID != "" {
		cfg.FragmentID = fragmentID
	}
	return cfg, path, nil
}
