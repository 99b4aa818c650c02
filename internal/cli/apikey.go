// filepath: internal/cli/apikey.go
package cli

import (
	"fmt"
	"io"
	"time"

	"apodapi/internal/config"
	"apodapi/internal/logging"
	"apodapi/internal/services/auth"

	"github.com/spf13/cobra"
)

var (
	apikeyTTL     time.Duration
	apikeySubject string
	apikeySave    bool
)

// apikeyCmd mints an ingest credential for the configured auth mode.
var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Generate an ingest API key",
	Long: `Generates a credential for POST /apod.
static: prints a random key to put in auth.api_key.
bcrypt: prints a random key and the hash to put in auth.api_key_hash.
jwt:    prints a token signed with auth.jwt_secret, valid for --ttl.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := runAPIKey(cfg.Auth, apikeySubject, apikeyTTL, cmd.OutOrStdout())
		if err != nil || !apikeySave || updated == cfg.Auth {
			return err
		}
		cfg.Auth = updated
		if err := config.SaveConfig(cfgFile, cfg); err != nil {
			return err
		}
		logging.Log.Infof("New API key saved to %s.", cfgFile)
		return nil
	},
}

func init() {
	apikeyCmd.Flags().DurationVar(&apikeyTTL, "ttl", 30*24*time.Hour, "Lifetime of a jwt token.")
	apikeyCmd.Flags().StringVar(&apikeySubject, "subject", "ingest", "Subject claim of a jwt token.")
	apikeyCmd.Flags().BoolVar(&apikeySave, "save", false, "Write the new static key or bcrypt hash back to the config file.")
	RootCmd.AddCommand(apikeyCmd)
}

// runAPIKey prints a new credential and returns c updated to accept it.
func runAPIKey(c config.AuthConfig, subject string, ttl time.Duration, out io.Writer) (config.AuthConfig, error) {
	switch c.Mode {
	case config.AuthModeJWT:
		token, err := auth.NewJWTKeyVerifier(c.JWTSecret).IssueToken(subject, ttl)
		if err != nil {
			return c, err
		}
		fmt.Fprintf(out, "x-api-key: %s\n", token)
		return c, nil
	case config.AuthModeBcrypt:
		key, err := auth.GenerateSecret()
		if err != nil {
			return c, fmt.Errorf("failed to generate key: %w", err)
		}
		hash, err := auth.HashKey(key)
		if err != nil {
			return c, fmt.Errorf("failed to hash key: %w", err)
		}
		fmt.Fprintf(out, "x-api-key: %s\napi_key_hash = %q\n", key, hash)
		c.APIKeyHash = hash
		return c, nil
	default:
		key, err := auth.GenerateSecret()
		if err != nil {
			return c, fmt.Errorf("failed to generate key: %w", err)
		}
		fmt.Fprintf(out, "api_key = %q\n", key)
		c.APIKey = key
		return c, nil
	}
}
