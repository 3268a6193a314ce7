package models

import (
	"time"

	"gorm.io/gorm"
)

// InventoryList is one property item on the institutional inventory.
type InventoryList struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	AssetModelID       uint             `gorm:"not null;index" json:"asset_model_id"`
	AssetModel         AssetModel       `gorm:"foreignKey:AssetModelID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"asset_model,omitempty"`
	AssetName          string           `gorm:"type:varchar(255);not null" json:"asset_name"`
	PropertyNo         string           `gorm:"type:varchar(100);not null;uniqueIndex" json:"property_no"`
	SerialNo           string           `gorm:"type:varchar(100)" json:"serial_no"`
	UnitOfMeasure      string           `gorm:"type:varchar(50)" json:"unit_of_measure"`
	UnitCost           float64          `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	Quantity           int              `gorm:"not null;default:1" json:"quantity"`
	UnitOrDepartmentID uint             `gorm:"not null;index" json:"unit_or_department_id"`
	UnitOrDepartment   UnitOrDepartment `gorm:"foreignKey:UnitOrDepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"unit_or_department,omitempty"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"deleted_at"`
}

func (InventoryList) AuditKey() string { return "inventory-list" }

func (i InventoryList) AuditID() uint { return i.ID }

func (i InventoryList) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"asset_model_id":        i.AssetModelID,
		"asset_name":            i.AssetName,
		"property_no":           i.PropertyNo,
		"serial_no":             i.SerialNo,
		"unit_of_measure":       i.UnitOfMeasure,
		"unit_cost":             i.UnitCost,
		"quantity":              i.Quantity,
		"unit_or_department_id": i.UnitOrDepartmentID,
	}
}

func (i InventoryList) ScopeID() *uint {
	id := i.UnitOrDepartmentID
	return &id
}
