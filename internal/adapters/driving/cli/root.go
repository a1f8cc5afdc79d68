// Package cli wires the leadsheet commands: serve, auth, sheet and
// version.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arlo-labs/leadsheet/internal/adapters/driven/auth"
	"github.com/arlo-labs/leadsheet/internal/adapters/driven/config/file"
	"github.com/arlo-labs/leadsheet/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "leadsheet",
	Short: "Webhook contact-intake pipeline backed by Google Sheets",
	Long: `leadsheet receives WhatsApp messages through a Twilio webhook, extracts
contact details from the message text or an attached PDF, DOCX or image,
and appends one row per message to a Google Sheet.

Getting started:
  leadsheet auth login    # one-time Google authorization
  leadsheet sheet init    # create and share the backing spreadsheet
  leadsheet serve         # run the webhook server`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(
		&flagConfigDir, "config-dir", "", "Configuration directory (default ~/.leadsheet)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings loads configuration from the configured directory.
func loadSettings() (file.Settings, error) {
	settings, err := file.Load(flagConfigDir)
	if err != nil {
		return file.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// buildProvider assembles the token store and Google token provider.
func buildProvider(settings file.Settings) (*auth.GoogleProvider, *auth.FileTokenStore, error) {
	store := auth.NewFileTokenStore(settings.TokenPath)
	provider, err := auth.NewGoogleProvider(settings.ClientSecretsPath, store)
	if err != nil {
		return nil, nil, err
	}
	return provider, store, nil
}
