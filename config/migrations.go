package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"deallane.io/onboarding/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "12082025_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.OnboardingSubmission{})
			},
		},
		{
			// Second form revision: lead routing and special finance topics.
			ID: "29082025_add_lead_routing_columns",
			Migrate: func(tx *gorm.DB) error {
				columns := []string{
					"crm_lead_email text",
					"crm_lead_email_not_applicable integer NOT NULL DEFAULT 0",
					"dms_inventory_feed text",
					"dms_inventory_feed_not_applicable integer NOT NULL DEFAULT 0",
					"special_finance_platform text",
					"special_finance_platform_not_applicable integer NOT NULL DEFAULT 0",
				}
				for _, col := range columns {
					if err := tx.Exec("ALTER TABLE onboarding_submissions ADD COLUMN IF NOT EXISTS " + col).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	})
	return m.Migrate()
}
