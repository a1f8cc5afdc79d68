package cli

import (
	"github.com/spf13/cobra"

	"github.com/arlo-labs/leadsheet/internal/adapters/driving/oauth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Google credential",
	Long: `Manage the stored Google credential used for sheet appends.

Authorization is a one-time interactive bootstrap: a local callback
listener is opened, the browser sent to Google's consent page, and the
resulting token persisted. The serving path never triggers this flow;
it fails instead, so run 'auth login' before 'serve'.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the interactive authorization flow",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a usable credential is stored",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	provider, store, err := buildProvider(settings)
	if err != nil {
		return err
	}

	authenticator := oauth.NewAuthenticator(provider.Config(), store, cmd.OutOrStdout())
	return authenticator.Authenticate(cmd.Context())
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	provider, store, err := buildProvider(settings)
	if err != nil {
		return err
	}

	if provider.IsAuthenticated(cmd.Context()) {
		cmd.Printf("Authenticated (token at %s)\n", store.Path())
	} else {
		cmd.Println("Not authenticated. Run 'leadsheet auth login'.")
	}
	return nil
}
