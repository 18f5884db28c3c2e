package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"deallane.io/onboarding/config"
	"deallane.io/onboarding/models"
	"deallane.io/onboarding/pkg/sheets"
)

// ExportSubmissionsToExcel streams every submission as an XLSX workbook,
// same column order as the Google Sheet plus triage metadata up front.
func ExportSubmissionsToExcel(w http.ResponseWriter, r *http.Request) {
	var items []models.OnboardingSubmission
	if err := config.DB.Order("submitted_at DESC").Find(&items).Error; err != nil {
		http.Error(w, "database not available", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	const sheet = "Submissions"
	f.SetSheetName("Sheet1", sheet)

	headers := append([]string{"ID", "Submitted At", "Status", "Notes"}, sheets.Headers()[1:]...)
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	for i, item := range items {
		notes := ""
		if item.Notes != nil {
			notes = *item.Notes
		}
		cells := append([]string{
			strconv.Itoa(item.ID),
			item.SubmittedAt.Time().Format(time.RFC3339),
			item.Status,
			notes,
		}, item.ExportRow()...)

		row := make([]interface{}, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
			return
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("onboarding_submissions_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}
