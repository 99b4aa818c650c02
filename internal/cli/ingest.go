// filepath: internal/cli/ingest.go
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"

	"apodapi/internal/logging"
	"apodapi/internal/services"

	"github.com/spf13/cobra"
)

var ingestDate string

// ingestCmd imports one picture from NASA without going through the HTTP API.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch one APOD from the NASA API and store it",
	Long:  `Fetches the picture of the day (or of --date) from the upstream API and stores it. Fails if the date is already archived.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(cfg)
		if err != nil {
			return err
		}
		defer repo.Close()

		return runIngest(cmd.Context(), newPictureService(cfg, repo), ingestDate, cmd.OutOrStdout())
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDate, "date", "", "Date in YYYY-MM-DD format. Defaults to today.")
	RootCmd.AddCommand(ingestCmd)
}

// runIngest stores one picture and prints it as JSON.
func runIngest(ctx context.Context, svc services.PictureService, date string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := svc.Ingest(ctx, date, cliActor())
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return fmt.Errorf("APOD for this date already exists")
		}
		return fmt.Errorf("ingest failed: %w", err)
	}

	logging.Log.Infof("Ingested APOD %s (%s)", p.Date, p.Title)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// cliActor names the local user for audit records.
func cliActor() string {
	if u, err := user.Current(); err == nil {
		return "cli:" + u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return "cli:" + name
	}
	return "cli"
}
