// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"time"

	"apodapi/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by file/env/flags
	cfg *config.Config

	// Flags
	cfgFile      string
	envFile      string
	logLevel     string
	host         string
	port         int
	dbDriver     string
	dbDSN        string
	upstreamKey  string
	auditEnabled bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "apodapi",
	Short: "Astronomy Picture of the Day API",
	Long:  `A REST API that archives NASA's Astronomy Picture of the Day and serves lookups, random picks and paginated search over it.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
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
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: APOD_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env_file", ".env", "Optional dotenv file loaded before reading the environment.")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: APOD_LOGGING_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "Database driver, sqlite or postgres. (Env: APOD_DATABASE_DRIVER)")
	RootCmd.PersistentFlags().StringVar(&dbDSN, "dsn", "", "Database file path or connection URL. (Env: APOD_DATABASE_DSN)")
	RootCmd.PersistentFlags().StringVar(&upstreamKey, "upstream-key", "", "NASA API key used for ingestion. (Env: APOD_UPSTREAM_API_KEY)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&host, "host", "", "Interface the HTTP server binds to. (Env: APOD_SERVER_HOST)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: APOD_SERVER_PORT)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable audit logging of ingests. (Env: APOD_LOGGING_AUDIT_ENABLED=true)")
}
