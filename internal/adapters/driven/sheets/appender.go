package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
	"github.com/arlo-labs/leadsheet/internal/logger"
)

// Ensure Appender implements the interface.
var _ driven.RowAppender = (*Appender)(nil)

// Appender appends contact rows to the first sheet of a spreadsheet
// identified by display name. The name is resolved to a spreadsheet ID
// through the Drive API once and cached for the process lifetime.
type Appender struct {
	provider  driven.TokenProvider
	sheetName string
	limiter   *RateLimiter

	mu            sync.Mutex
	sheetsService *sheets.Service
	driveService  *drive.Service
	spreadsheetID string
}

// NewAppender creates an appender targeting the named spreadsheet.
func NewAppender(provider driven.TokenProvider, sheetName string) *Appender {
	return &Appender{
		provider:  provider,
		sheetName: sheetName,
		limiter:   NewRateLimiter(ServiceSheets),
	}
}

// Append writes the record as one row after the last row of the first
// sheet. Credential failures from the token provider propagate to the
// caller; nothing here retries.
func (a *Appender) Append(ctx context.Context, record domain.ContactRecord) error {
	svc, id, err := a.target(ctx)
	if err != nil {
		return err
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	values := &sheets.ValueRange{Values: [][]any{record.Row()}}
	// A sheet-unqualified range addresses the first sheet.
	_, err = svc.Spreadsheets.Values.Append(id, "A1", values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to %q: %w", a.sheetName, err)
	}

	logger.Debug("sheets: appended row for %s to %s", record.Sender, id)
	return nil
}

// target returns the Sheets service and resolved spreadsheet ID,
// initializing both on first use.
func (a *Appender) target(ctx context.Context) (*sheets.Service, string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sheetsService == nil {
		ts, err := a.provider.TokenSource(ctx)
		if err != nil {
			return nil, "", err
		}

		a.sheetsService, err = NewSheetsService(ctx, ts)
		if err != nil {
			return nil, "", fmt.Errorf("create sheets service: %w", err)
		}
		a.driveService, err = NewDriveService(ctx, ts)
		if err != nil {
			return nil, "", fmt.Errorf("create drive service: %w", err)
		}
	}

	if a.spreadsheetID == "" {
		id, err := resolveSpreadsheetID(ctx, a.driveService, a.sheetName)
		if err != nil {
			return nil, "", err
		}
		a.spreadsheetID = id
		logger.Debug("sheets: resolved %q to %s", a.sheetName, id)
	}

	return a.sheetsService, a.spreadsheetID, nil
}

// resolveSpreadsheetID looks up a spreadsheet by display name.
func resolveSpreadsheetID(ctx context.Context, svc *drive.Service, name string) (string, error) {
	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`),
	)

	list, err := svc.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("look up spreadsheet %q: %w", name, err)
	}

	if len(list.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found: run 'leadsheet sheet init' first", name)
	}

	return list.Files[0].Id, nil
}
