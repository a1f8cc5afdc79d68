// Package file loads and persists leadsheet settings: a TOML file for
// the non-secret configuration and process environment (optionally a
// .env file) for the platform credentials.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Settings is the explicit configuration passed into each component at
// construction. There are no ambient globals.
type Settings struct {
	// SheetName is the display name of the backing spreadsheet.
	SheetName string `toml:"sheet_name"`
	// ClientSecretsPath locates the Google OAuth client secrets JSON.
	ClientSecretsPath string `toml:"client_secrets_path"`
	// TokenPath locates the persisted OAuth token.
	TokenPath string `toml:"token_path"`
	// ListenAddr is the webhook server's listen address.
	ListenAddr string `toml:"listen_addr"`

	// Env-sourced secrets, never written to the TOML file.

	// TwilioAccountSID authenticates media fetches (basic auth user).
	TwilioAccountSID string `toml:"-"`
	// TwilioAuthToken authenticates media fetches (basic auth password).
	TwilioAuthToken string `toml:"-"`
	// OpenAIAPIKey is carried for the optional AI integration. The core
	// intake flow does not use it.
	OpenAIAPIKey string `toml:"-"`
}

// DefaultDir returns the leadsheet configuration directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".leadsheet"), nil
}

// defaults fills in values for fields the TOML file omits.
func defaults(dir string) Settings {
	return Settings{
		SheetName:         "Data Demo",
		ClientSecretsPath: filepath.Join(dir, "credentials.json"),
		TokenPath:         filepath.Join(dir, "token.json"),
		ListenAddr:        ":5000",
	}
}

// Load reads config.toml from the given directory, falling back to
// defaults for anything unset, then overlays the environment secrets.
// If configDir is empty, ~/.leadsheet is used. A missing config file
// is not an error.
func Load(configDir string) (Settings, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Settings{}, err
		}
		configDir = dir
	}

	settings := defaults(configDir)

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return Settings{}, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("parse config: %w", err)
		}
	}

	loadEnv(&settings)
	return settings, nil
}

// Save writes the non-secret settings to config.toml in the given
// directory, creating the directory if needed.
func Save(configDir string, settings Settings) error {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// loadEnv overlays the environment-sourced secrets. A .env file in the
// working directory is honoured; real environment variables win.
func loadEnv(settings *Settings) {
	_ = godotenv.Load()

	settings.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	settings.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	settings.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
}
