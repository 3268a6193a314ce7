package models

import (
	"time"

	"gorm.io/gorm"
)

// EquipmentCopy is one physical unit of an inventory item.
type EquipmentCopy struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	InventoryListID uint           `gorm:"not null;index" json:"inventory_list_id"`
	InventoryList   InventoryList  `gorm:"foreignKey:InventoryListID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"inventory_list,omitempty"`
	CopyNumber      int            `gorm:"not null" json:"copy_number"`
	Status          string         `gorm:"type:varchar(30);not null;default:'available'" json:"status"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (EquipmentCopy) AuditKey() string { return "equipment-copy" }

func (e EquipmentCopy) AuditID() uint { return e.ID }

func (e EquipmentCopy) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"inventory_list_id": e.InventoryListID,
		"copy_number":       e.CopyNumber,
		"status":            e.Status,
	}
}

func (EquipmentCopy) ScopeID() *uint { return nil }
