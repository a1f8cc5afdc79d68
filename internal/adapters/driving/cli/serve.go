package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/arlo-labs/leadsheet/internal/adapters/driven/sheets"
	"github.com/arlo-labs/leadsheet/internal/adapters/driven/twilio"
	"github.com/arlo-labs/leadsheet/internal/adapters/driving/webhook"
	"github.com/arlo-labs/leadsheet/internal/core/services"
	"github.com/arlo-labs/leadsheet/internal/extractors/docx"
	"github.com/arlo-labs/leadsheet/internal/extractors/image"
	"github.com/arlo-labs/leadsheet/internal/extractors/pdf"
	"github.com/arlo-labs/leadsheet/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook server",
	Long: `Run the inbound webhook server.

The server answers POST /whatsapp with a TwiML acknowledgment after
appending the parsed contact row, and GET /health for liveness checks.
Requires a stored Google credential ('leadsheet auth login') and the
TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN environment variables for
attachment fetching.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	provider, _, err := buildProvider(settings)
	if err != nil {
		return err
	}
	if !provider.IsAuthenticated(cmd.Context()) {
		return fmt.Errorf("no stored Google credential: run 'leadsheet auth login' first")
	}

	if settings.TwilioAccountSID == "" || settings.TwilioAuthToken == "" {
		logger.Warn("serve: TWILIO_ACCOUNT_SID/TWILIO_AUTH_TOKEN not set; attachment fetches will fail")
	}

	intake := services.NewIntakeService(
		twilio.NewFetcher(settings.TwilioAccountSID, settings.TwilioAuthToken, nil),
		sheets.NewAppender(provider, settings.SheetName),
		pdf.New(),
		docx.New(),
		image.New(),
	)

	handler := webhook.NewHandler(intake)

	cmd.Printf("Listening on %s (sheet %q)\n", settings.ListenAddr, settings.SheetName)
	return http.ListenAndServe(settings.ListenAddr, handler.Router())
}
