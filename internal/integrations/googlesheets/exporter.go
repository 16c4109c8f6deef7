package googlesheets

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"assettrack/pkg/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// ReportExporter appends warranty reports to a shared spreadsheet. It stays
// disabled unless both the credentials and the spreadsheet id are configured.
type ReportExporter struct {
	sheetsService *sheets.Service
	spreadsheetID string
}

func NewReportExporter() (*ReportExporter, error) {
	spreadsheetID := os.Getenv("REPORT_SPREADSHEET_ID")
	credentialsJSON := os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON")

	if spreadsheetID == "" || credentialsJSON == "" {
		return &ReportExporter{}, nil
	}

	ctx := context.Background()
	credentials, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load Google credentials: %w", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	sheetsService, err := sheets.New(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Sheets client: %w", err)
	}

	return &ReportExporter{
		sheetsService: sheetsService,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (e *ReportExporter) Enabled() bool {
	return e.sheetsService != nil && e.spreadsheetID != ""
}

// ExportWarrantyReport appends one row per asset plus a header stamped with
// the export time, and returns the spreadsheet URL.
func (e *ReportExporter) ExportWarrantyReport(assets []models.WarrantyAsset) (string, error) {
	if !e.Enabled() {
		return "", fmt.Errorf("spreadsheet export is not configured")
	}

	rows := [][]interface{}{
		{fmt.Sprintf("Warranty report %s", time.Now().UTC().Format("2006-01-02 15:04"))},
		{"ID", "Name", "Type", "Serial", "Status", "Warranty expiry", "Days remaining"},
	}

	for _, asset := range assets {
		serial := ""
		if asset.SerialNumber != nil {
			serial = *asset.SerialNumber
		}
		rows = append(rows, []interface{}{
			asset.ID,
			asset.Name,
			asset.AssetType,
			serial,
			asset.Status,
			asset.WarrantyExpiry.Format("2006-01-02"),
			asset.DaysRemaining,
		})
	}

	valueRange := &sheets.ValueRange{Values: rows}

	_, err := e.sheetsService.Spreadsheets.Values.
		Append(e.spreadsheetID, "A1", valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Do()

	if err != nil {
		return "", fmt.Errorf("failed to append report rows: %w", err)
	}

	log.Printf("exported warranty report with %d rows", len(assets))

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", e.spreadsheetID), nil
}
