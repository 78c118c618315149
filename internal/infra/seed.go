package infra

import (
	"log/slog"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
)

var defaultScopeTypes = []db_models.ScopeTypeBusiness{
	{Name: "Beauty", Description: "Beauty salons, barbershops, cosmetology"},
	{Name: "Health", Description: "Clinics, massage, wellness practices"},
	{Name: "Education", Description: "Tutoring, courses, coaching"},
	{Name: "Services", Description: "Repair, cleaning, other local services"},
	{Name: "Retail", Description: "Shops and small trade"},
	{Name: "Other", Description: "Everything else"},
}

// SeedScopeTypes inserts the scope-type catalog rows that are not present
// yet, keyed by name. Safe to run on every startup.
func SeedScopeTypes(db *gorm.DB) error {
	for _, scopeType := range defaultScopeTypes {
		var count int64
		if err := db.Model(&db_models.ScopeTypeBusiness{}).
			Where("name = ?", scopeType.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := scopeType
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		slog.Info("seeded scope type", "name", row.Name)
	}
	return nil
}
