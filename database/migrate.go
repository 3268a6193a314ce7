package database

import (
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/utils"
)

// AutoMigrate creates/updates every table the application owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.UnitOrDepartment{},
		&models.Building{},
		&models.BuildingRoom{},
		&models.Personnel{},
		&models.Designation{},
		&models.Signatory{},
		&models.Category{},
		&models.AssetModel{},
		&models.InventoryList{},
		&models.EquipmentCopy{},
		&models.PropertyTransfer{},
		&models.TurnoverDisposal{},
		&models.VerificationForm{},
		&models.OffCampusPass{},
		&models.InventoryScheduling{},
		&models.ChangeRecord{},
	)
}

// SeedRoles inserts the default roles when they are missing.
func SeedRoles(db *gorm.DB) error {
	defaults := []models.Role{
		{Name: "admin", Description: "Full administrative access"},
		{Name: "property_custodian", Description: "Manages inventories, transfers and disposals"},
		{Name: "staff", Description: "Read access and form submission"},
	}

	for _, role := range defaults {
		var count int64
		if err := db.Model(&models.Role{}).Where("name = ?", role.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded role %s", role.Name)
	}
	return nil
}
