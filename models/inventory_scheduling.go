package models

import (
	"time"

	"gorm.io/gorm"
)

// InventoryScheduling is a scheduled physical-count of a unit's inventory.
type InventoryScheduling struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	UnitOrDepartmentID uint             `gorm:"not null;index" json:"unit_or_department_id"`
	UnitOrDepartment   UnitOrDepartment `gorm:"foreignKey:UnitOrDepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"unit_or_department,omitempty"`
	BuildingID         *uint            `gorm:"index" json:"building_id"`
	Building           *Building        `gorm:"foreignKey:BuildingID;references:ID" json:"building,omitempty"`
	ScheduledDate      time.Time        `gorm:"not null" json:"scheduled_date"`
	Status             string           `gorm:"type:varchar(30);not null;default:'scheduled'" json:"status"`
	Remarks            string           `gorm:"type:text" json:"remarks"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"deleted_at"`
}

func (InventoryScheduling) AuditKey() string { return "inventory-scheduling" }

func (s InventoryScheduling) AuditID() uint { return s.ID }

func (s InventoryScheduling) AuditState() map[string]interface{} {
	state := map[string]interface{}{
		"unit_or_department_id": s.UnitOrDepartmentID,
		"scheduled_date":        s.ScheduledDate.Format("2006-01-02"),
		"status":                s.Status,
		"remarks":               s.Remarks,
	}
	if s.BuildingID != nil {
		state["building_id"] = *s.BuildingID
	}
	return state
}

func (s InventoryScheduling) ScopeID() *uint {
	id := s.UnitOrDepartmentID
	return &id
}
