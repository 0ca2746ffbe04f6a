// filepath: internal/cli/cli.go
package cli

import (
	"fmt"
	"os"
	"time"

	"payinfo/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "0.1.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Persistent flags
	cfgFile  string
	logLevel string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "payinfo",
	Short: "Payment info lookup service",
	Long:  `Stores payment infos published by merchants and serves them by reference id.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	registerPersistentFlags(RootCmd)

	RootCmd.AddCommand(newServeCommand())
	RootCmd.AddCommand(newMigrateCommand())
	RootCmd.AddCommand(newImportCommand())
	RootCmd.AddCommand(newTokenCommand())
}

func registerPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: PAYINFO_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (trace, debug, info, warn, error). (Env: PAYINFO_LOGGING_LEVEL)")
}
