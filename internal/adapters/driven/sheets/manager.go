package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
)

// Manager bootstraps the backing spreadsheet: creation and sharing.
// Used by the 'sheet init' command, not by the serving path.
type Manager struct {
	provider driven.TokenProvider
	limiter  *RateLimiter
}

// NewManager creates a spreadsheet manager.
func NewManager(provider driven.TokenProvider) *Manager {
	return &Manager{
		provider: provider,
		limiter:  NewRateLimiter(ServiceDrive),
	}
}

// CreateAndShare creates a spreadsheet with the given title, shares it
// link-writable and returns its URL.
func (m *Manager) CreateAndShare(ctx context.Context, title string) (string, error) {
	ts, err := m.provider.TokenSource(ctx)
	if err != nil {
		return "", err
	}

	sheetsService, err := NewSheetsService(ctx, ts)
	if err != nil {
		return "", fmt.Errorf("create sheets service: %w", err)
	}
	driveService, err := NewDriveService(ctx, ts)
	if err != nil {
		return "", fmt.Errorf("create drive service: %w", err)
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	spreadsheet, err := sheetsService.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create spreadsheet %q: %w", title, err)
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	_, err = driveService.Permissions.Create(spreadsheet.SpreadsheetId, &drive.Permission{
		Type: "anyone",
		Role: "writer",
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("share spreadsheet: %w", err)
	}

	return spreadsheet.SpreadsheetUrl, nil
}
