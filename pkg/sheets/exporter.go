// Package sheets appends onboarding submissions to a Google Sheet as a
// best-effort side channel. The database stays the system of record:
// every failure here is logged and reported as a structured Result, never
// an error the caller has to handle.
package sheets

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	appendRange = "Sheet1!A:V"
	headerRange = "Sheet1!A1:V1"
)

// Result is the structured outcome of an export attempt.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Headers returns the fixed column order, timestamp first. Append writes
// values in this same order.
func Headers() []string {
	return []string{
		"Timestamp",
		"Dealership Name",
		"Dealership Address",
		"Dealership Phone",
		"Primary Contact Name",
		"Primary Contact Email",
		"Primary Contact Cell",
		"CRM Company",
		"CRM Lead Email",
		"DMS Company",
		"DMS Inventory Feed",
		"Website Company",
		"3rd Party Vendors",
		"Facebook Ads",
		"Marketplace Platforms",
		"Subprime Lenders",
		"Sales Process",
		"Special Finance Platform",
		"Platform Name",
		"Color Scheme",
		"Tire/Wheel Sales",
		"Platform Usage",
	}
}

// Exporter holds the service-account credentials and target spreadsheet.
// An unconfigured Exporter is valid: every call returns the recognized
// "not configured" Result without touching the network.
type Exporter struct {
	credentials   []byte
	spreadsheetID string
}

func New(credentials []byte, spreadsheetID string) *Exporter {
	return &Exporter{credentials: credentials, spreadsheetID: spreadsheetID}
}

func NewFromEnv() *Exporter {
	return New(
		[]byte(os.Getenv("GOOGLE_SHEETS_CREDENTIALS")),
		os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"),
	)
}

func (e *Exporter) configured() bool {
	return len(e.credentials) > 0 && e.spreadsheetID != ""
}

func (e *Exporter) service(ctx context.Context) (*gsheets.Service, error) {
	cfg, err := google.JWTConfigFromJSON(e.credentials, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// Append writes one row: an RFC3339 timestamp followed by the flattened
// submission fields. Single attempt, no retry.
func (e *Exporter) Append(ctx context.Context, row []string) Result {
	if !e.configured() {
		log.Println("Google Sheets credentials not configured, skipping export")
		return Result{Success: false, Message: "Google Sheets not configured"}
	}

	svc, err := e.service(ctx)
	if err != nil {
		log.Printf("Error exporting to Google Sheets: %v", err)
		return Result{Success: false, Message: "Failed to export to Google Sheets"}
	}

	values := make([]interface{}, 0, len(row)+1)
	values = append(values, time.Now().UTC().Format(time.RFC3339))
	for _, v := range row {
		values = append(values, v)
	}

	_, err = svc.Spreadsheets.Values.
		Append(e.spreadsheetID, appendRange, &gsheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		log.Printf("Error exporting to Google Sheets: %v", err)
		return Result{Success: false, Message: "Failed to export to Google Sheets"}
	}

	return Result{Success: true, Message: "Exported to Google Sheets"}
}

// Initialize writes the header row if the sheet is still empty.
func (e *Exporter) Initialize(ctx context.Context) Result {
	if !e.configured() {
		return Result{Success: false, Message: "Google Sheets not configured"}
	}

	svc, err := e.service(ctx)
	if err != nil {
		log.Printf("Error initializing Google Sheet: %v", err)
		return Result{Success: false, Message: "Failed to initialize Google Sheet"}
	}

	resp, err := svc.Spreadsheets.Values.Get(e.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		log.Printf("Error initializing Google Sheet: %v", err)
		return Result{Success: false, Message: "Failed to initialize Google Sheet"}
	}

	if len(resp.Values) == 0 {
		headers := make([]interface{}, 0, len(Headers()))
		for _, h := range Headers() {
			headers = append(headers, h)
		}
		_, err = svc.Spreadsheets.Values.
			Update(e.spreadsheetID, headerRange, &gsheets.ValueRange{Values: [][]interface{}{headers}}).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			log.Printf("Error initializing Google Sheet: %v", err)
			return Result{Success: false, Message: "Failed to initialize Google Sheet"}
		}
		log.Println("Initialized Google Sheet with headers")
	}

	return Result{Success: true, Message: "Google Sheet initialized"}
}
