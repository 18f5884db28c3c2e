package models

// OnboardingSubmission is one dealership intake form, flat pairs of
// free-text answer + not-applicable flag per topic. Flags are stored as
// 0/1 integers; the JSON shape matches what the wizard client submits.
type OnboardingSubmission struct {
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`

	// Dealership info
	DealershipName    *string `gorm:"column:dealership_name;size:255" json:"dealershipName"`
	DealershipAddress *string `gorm:"column:dealership_address;type:text" json:"dealershipAddress"`
	DealershipPhone   *string `gorm:"column:dealership_phone;size:50" json:"dealershipPhone"`

	// Primary contact
	PrimaryContactName  *string `gorm:"column:primary_contact_name;size:255" json:"primaryContactName"`
	PrimaryContactEmail *string `gorm:"column:primary_contact_email;size:320" json:"primaryContactEmail"`
	PrimaryContactCell  *string `gorm:"column:primary_contact_cell;size:50" json:"primaryContactCell"`

	// Per-topic answers
	CRMName          *string `gorm:"column:crm_name;type:text" json:"crmName"`
	CRMNotApplicable int     `gorm:"column:crm_not_applicable;not null;default:0" json:"crmNotApplicable"`

	CRMLeadEmail              *string `gorm:"column:crm_lead_email;type:text" json:"crmLeadEmail"`
	CRMLeadEmailNotApplicable int     `gorm:"column:crm_lead_email_not_applicable;not null;default:0" json:"crmLeadEmailNotApplicable"`

	DMSName          *string `gorm:"column:dms_name;type:text" json:"dmsName"`
	DMSNotApplicable int     `gorm:"column:dms_not_applicable;not null;default:0" json:"dmsNotApplicable"`

	DMSInventoryFeed              *string `gorm:"column:dms_inventory_feed;type:text" json:"dmsInventoryFeed"`
	DMSInventoryFeedNotApplicable int     `gorm:"column:dms_inventory_feed_not_applicable;not null;default:0" json:"dmsInventoryFeedNotApplicable"`

	WebsiteProvider      *string `gorm:"column:website_provider;type:text" json:"websiteProvider"`
	WebsiteNotApplicable int     `gorm:"column:website_not_applicable;not null;default:0" json:"websiteNotApplicable"`

	ThirdPartyVendors       *string `gorm:"column:third_party_vendors;type:text" json:"thirdPartyVendors"`
	ThirdPartyNotApplicable int     `gorm:"column:third_party_not_applicable;not null;default:0" json:"thirdPartyNotApplicable"`

	FacebookAdsUsage         *string `gorm:"column:facebook_ads_usage;type:text" json:"facebookAdsUsage"`
	FacebookAdsNotApplicable int     `gorm:"column:facebook_ads_not_applicable;not null;default:0" json:"facebookAdsNotApplicable"`

	MarketplacePlatforms     *string `gorm:"column:marketplace_platforms;type:text" json:"marketplacePlatforms"`
	MarketplaceNotApplicable int     `gorm:"column:marketplace_not_applicable;not null;default:0" json:"marketplaceNotApplicable"`

	BackendProducts      *string `gorm:"column:backend_products;type:text" json:"backendProducts"`
	BackendNotApplicable int     `gorm:"column:backend_not_applicable;not null;default:0" json:"backendNotApplicable"`

	SubprimeLenders       *string `gorm:"column:subprime_lenders;type:text" json:"subprimeLenders"`
	SubprimeNotApplicable int     `gorm:"column:subprime_not_applicable;not null;default:0" json:"subprimeNotApplicable"`

	SalesProcessStructure     *string `gorm:"column:sales_process_structure;type:text" json:"salesProcessStructure"`
	SalesProcessNotApplicable int     `gorm:"column:sales_process_not_applicable;not null;default:0" json:"salesProcessNotApplicable"`

	RehashingLenders       *string `gorm:"column:rehashing_lenders;type:text" json:"rehashingLenders"`
	RehashingNotApplicable int     `gorm:"column:rehashing_not_applicable;not null;default:0" json:"rehashingNotApplicable"`

	SpecialFinancePlatform              *string `gorm:"column:special_finance_platform;type:text" json:"specialFinancePlatform"`
	SpecialFinancePlatformNotApplicable int     `gorm:"column:special_finance_platform_not_applicable;not null;default:0" json:"specialFinancePlatformNotApplicable"`

	// Platform customization
	PlatformName   *string `gorm:"column:platform_name;size:255" json:"platformName"`
	ColorScheme    *string `gorm:"column:color_scheme;size:100" json:"colorScheme"`
	TireWheelSales *string `gorm:"column:tire_wheel_sales;size:50" json:"tireWheelSales"`
	PlatformUsage  *string `gorm:"column:platform_usage;size:100" json:"platformUsage"`

	// Metadata
	SubmittedAt JSONTime `gorm:"column:submitted_at;not null" json:"submittedAt"`
	Status      string   `gorm:"column:status;size:20;not null;default:new" json:"status"`
	Notes       *string  `gorm:"column:notes;type:text" json:"notes"`
}

func (OnboardingSubmission) TableName() string {
	return "onboarding_submissions"
}

const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ValidStatus reports whether s is one of the triage states.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Topic is the resolved view of a single answer: either applicable free
// text or not applicable. A voided topic never exposes its stored text.
type Topic struct {
	Value         string
	NotApplicable bool
}

// Resolve returns the display/export value for the topic.
func (t Topic) Resolve() string {
	if t.NotApplicable {
		return "N/A"
	}
	return t.Value
}

func topic(value *string, notApplicable int) Topic {
	t := Topic{NotApplicable: notApplicable != 0}
	if value != nil {
		t.Value = *value
	}
	return t
}

// topicPairs lists every value/flag pair so Normalize stays in sync with
// the schema.
func (s *OnboardingSubmission) topicPairs() []struct {
	value **string
	flag  *int
} {
	return []struct {
		value **string
		flag  *int
	}{
		{&s.CRMName, &s.CRMNotApplicable},
		{&s.CRMLeadEmail, &s.CRMLeadEmailNotApplicable},
		{&s.DMSName, &s.DMSNotApplicable},
		{&s.DMSInventoryFeed, &s.DMSInventoryFeedNotApplicable},
		{&s.WebsiteProvider, &s.WebsiteNotApplicable},
		{&s.ThirdPartyVendors, &s.ThirdPartyNotApplicable},
		{&s.FacebookAdsUsage, &s.FacebookAdsNotApplicable},
		{&s.MarketplacePlatforms, &s.MarketplaceNotApplicable},
		{&s.BackendProducts, &s.BackendNotApplicable},
		{&s.SubprimeLenders, &s.SubprimeNotApplicable},
		{&s.SalesProcessStructure, &s.SalesProcessNotApplicable},
		{&s.RehashingLenders, &s.RehashingNotApplicable},
		{&s.SpecialFinancePlatform, &s.SpecialFinancePlatformNotApplicable},
	}
}

// Normalize enforces the not-applicable invariant before a write: a topic
// marked not applicable keeps no stale answer text.
func (s *OnboardingSubmission) Normalize() {
	for _, p := range s.topicPairs() {
		if *p.flag != 0 {
			*p.value = nil
		}
	}
}

// ExportRow flattens the submission into the fixed spreadsheet column
// order (everything after the timestamp column). Voided topics export as
// "N/A" regardless of any stored text.
func (s *OnboardingSubmission) ExportRow() []string {
	return []string{
		deref(s.DealershipName),
		deref(s.DealershipAddress),
		deref(s.DealershipPhone),
		deref(s.PrimaryContactName),
		deref(s.PrimaryContactEmail),
		deref(s.PrimaryContactCell),
		topic(s.CRMName, s.CRMNotApplicable).Resolve(),
		topic(s.CRMLeadEmail, s.CRMLeadEmailNotApplicable).Resolve(),
		topic(s.DMSName, s.DMSNotApplicable).Resolve(),
		topic(s.DMSInventoryFeed, s.DMSInventoryFeedNotApplicable).Resolve(),
		topic(s.WebsiteProvider, s.WebsiteNotApplicable).Resolve(),
		topic(s.ThirdPartyVendors, s.ThirdPartyNotApplicable).Resolve(),
		topic(s.FacebookAdsUsage, s.FacebookAdsNotApplicable).Resolve(),
		topic(s.MarketplacePlatforms, s.MarketplaceNotApplicable).Resolve(),
		topic(s.SubprimeLenders, s.SubprimeNotApplicable).Resolve(),
		topic(s.SalesProcessStructure, s.SalesProcessNotApplicable).Resolve(),
		topic(s.SpecialFinancePlatform, s.SpecialFinancePlatformNotApplicable).Resolve(),
		deref(s.PlatformName),
		deref(s.ColorScheme),
		deref(s.TireWheelSales),
		deref(s.PlatformUsage),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
