package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"deallane.io/onboarding/config"
	"deallane.io/onboarding/models"
	"deallane.io/onboarding/pkg/sheets"
)

var validate = validator.New()

// submitRequest is the wizard's wire shape: optional free text plus a
// required boolean per topic. Flags arrive as booleans and are stored as
// 0/1 integers.
type submitRequest struct {
	DealershipName    string `json:"dealershipName"`
	DealershipAddress string `json:"dealershipAddress"`
	DealershipPhone   string `json:"dealershipPhone"`

	PrimaryContactName  string `json:"primaryContactName"`
	PrimaryContactEmail string `json:"primaryContactEmail" validate:"omitempty,email"`
	PrimaryContactCell  string `json:"primaryContactCell"`

	CRMName          string `json:"crmName"`
	CRMNotApplicable bool   `json:"crmNotApplicable"`

	CRMLeadEmail              string `json:"crmLeadEmail"`
	CRMLeadEmailNotApplicable bool   `json:"crmLeadEmailNotApplicable"`

	DMSName          string `json:"dmsName"`
	DMSNotApplicable bool   `json:"dmsNotApplicable"`

	DMSInventoryFeed              string `json:"dmsInventoryFeed"`
	DMSInventoryFeedNotApplicable bool   `json:"dmsInventoryFeedNotApplicable"`

	WebsiteProvider      string `json:"websiteProvider"`
	WebsiteNotApplicable bool   `json:"websiteNotApplicable"`

	ThirdPartyVendors       string `json:"thirdPartyVendors"`
	ThirdPartyNotApplicable bool   `json:"thirdPartyNotApplicable"`

	FacebookAdsUsage         string `json:"facebookAdsUsage"`
	FacebookAdsNotApplicable bool   `json:"facebookAdsNotApplicable"`

	MarketplacePlatforms     string `json:"marketplacePlatforms"`
	MarketplaceNotApplicable bool   `json:"marketplaceNotApplicable"`

	BackendProducts      string `json:"backendProducts"`
	BackendNotApplicable bool   `json:"backendNotApplicable"`

	SubprimeLenders       string `json:"subprimeLenders"`
	SubprimeNotApplicable bool   `json:"subprimeNotApplicable"`

	SalesProcessStructure     string `json:"salesProcessStructure"`
	SalesProcessNotApplicable bool   `json:"salesProcessNotApplicable"`

	RehashingLenders       string `json:"rehashingLenders"`
	RehashingNotApplicable bool   `json:"rehashingNotApplicable"`

	SpecialFinancePlatform              string `json:"specialFinancePlatform"`
	SpecialFinancePlatformNotApplicable bool   `json:"specialFinancePlatformNotApplicable"`

	PlatformName   string `json:"platformName"`
	ColorScheme    string `json:"colorScheme"`
	TireWheelSales string `json:"tireWheelSales"`
	PlatformUsage  string `json:"platformUsage"`
}

func (req *submitRequest) toModel() models.OnboardingSubmission {
	return models.OnboardingSubmission{
		DealershipName:    strPtr(req.DealershipName),
		DealershipAddress: strPtr(req.DealershipAddress),
		DealershipPhone:   strPtr(req.DealershipPhone),

		PrimaryContactName:  strPtr(req.PrimaryContactName),
		PrimaryContactEmail: strPtr(req.PrimaryContactEmail),
		PrimaryContactCell:  strPtr(req.PrimaryContactCell),

		CRMName:          strPtr(req.CRMName),
		CRMNotApplicable: boolToInt(req.CRMNotApplicable),

		CRMLeadEmail:              strPtr(req.CRMLeadEmail),
		CRMLeadEmailNotApplicable: boolToInt(req.CRMLeadEmailNotApplicable),

		DMSName:          strPtr(req.DMSName),
		DMSNotApplicable: boolToInt(req.DMSNotApplicable),

		DMSInventoryFeed:              strPtr(req.DMSInventoryFeed),
		DMSInventoryFeedNotApplicable: boolToInt(req.DMSInventoryFeedNotApplicable),

		WebsiteProvider:      strPtr(req.WebsiteProvider),
		WebsiteNotApplicable: boolToInt(req.WebsiteNotApplicable),

		ThirdPartyVendors:       strPtr(req.ThirdPartyVendors),
		ThirdPartyNotApplicable: boolToInt(req.ThirdPartyNotApplicable),

		FacebookAdsUsage:         strPtr(req.FacebookAdsUsage),
		FacebookAdsNotApplicable: boolToInt(req.FacebookAdsNotApplicable),

		MarketplacePlatforms:     strPtr(req.MarketplacePlatforms),
		MarketplaceNotApplicable: boolToInt(req.MarketplaceNotApplicable),

		BackendProducts:      strPtr(req.BackendProducts),
		BackendNotApplicable: boolToInt(req.BackendNotApplicable),

		SubprimeLenders:       strPtr(req.SubprimeLenders),
		SubprimeNotApplicable: boolToInt(req.SubprimeNotApplicable),

		SalesProcessStructure:     strPtr(req.SalesProcessStructure),
		SalesProcessNotApplicable: boolToInt(req.SalesProcessNotApplicable),

		RehashingLenders:       strPtr(req.RehashingLenders),
		RehashingNotApplicable: boolToInt(req.RehashingNotApplicable),

		SpecialFinancePlatform:              strPtr(req.SpecialFinancePlatform),
		SpecialFinancePlatformNotApplicable: boolToInt(req.SpecialFinancePlatformNotApplicable),

		PlatformName:   strPtr(req.PlatformName),
		ColorScheme:    strPtr(req.ColorScheme),
		TireWheelSales: strPtr(req.TireWheelSales),
		PlatformUsage:  strPtr(req.PlatformUsage),
	}
}

// SubmitOnboarding accepts a public form submission. The row is durably
// written before the response; the sheet export runs detached so its
// latency or failure can never reach the caller.
func SubmitOnboarding(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(&req); err != nil {
		http.Error(w, "invalid contact email", http.StatusBadRequest)
		return
	}

	item := req.toModel()
	item.Normalize()
	item.SubmittedAt = models.JSONTime(time.Now().UTC())
	item.Status = models.StatusNew

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "database not available", http.StatusInternalServerError)
		return
	}

	row := item.ExportRow()
	go func() {
		res := sheets.NewFromEnv().Append(context.Background(), row)
		if res.Success {
			log.Println("Successfully exported submission to Google Sheets")
		} else {
			log.Println("Sheet export dropped:", res.Message)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// ListSubmissions returns every submission, most recent first. Admin only
// (enforced by the route middleware).
func ListSubmissions(w http.ResponseWriter, r *http.Request) {
	var items []models.OnboardingSubmission
	if err := config.DB.Order("submitted_at DESC").Find(&items).Error; err != nil {
		http.Error(w, "database not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

type updateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// UpdateSubmissionStatus overwrites status and notes on one row. A
// missing id matches zero rows and still reports success, and repeating
// the same update leaves the row unchanged.
func UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid submission id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.ValidStatus(req.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	result := config.DB.Model(&models.OnboardingSubmission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": req.Status, "notes": req.Notes})
	if result.Error != nil {
		http.Error(w, "database not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
