package cli

import (
	"github.com/spf13/cobra"

	"github.com/arlo-labs/leadsheet/internal/adapters/driven/sheets"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Manage the backing spreadsheet",
}

var sheetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create and share the backing spreadsheet",
	Long: `Create the spreadsheet the webhook appends to, named after the
configured sheet name, and share it link-writable. Run once after
'auth login'.`,
	RunE: runSheetInit,
}

func init() {
	sheetCmd.AddCommand(sheetInitCmd)
	rootCmd.AddCommand(sheetCmd)
}

func runSheetInit(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	provider, _, err := buildProvider(settings)
	if err != nil {
		return err
	}

	manager := sheets.NewManager(provider)
	url, err := manager.CreateAndShare(cmd.Context(), settings.SheetName)
	if err != nil {
		return err
	}

	cmd.Printf("Spreadsheet created: %s\n", url)
	return nil
}
