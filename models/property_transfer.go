package models

import (
	"time"

	"gorm.io/gorm"
)

type PropertyTransfer struct {
	ID                      uint             `gorm:"primaryKey" json:"id"`
	RefNo                   string           `gorm:"type:varchar(100);not null;uniqueIndex" json:"ref_no"`
	OriginUnitID            uint             `gorm:"not null;index" json:"origin_unit_id"`
	OriginUnit              UnitOrDepartment `gorm:"foreignKey:OriginUnitID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"origin_unit,omitempty"`
	DestinationUnitID       uint             `gorm:"not null;index" json:"destination_unit_id"`
	DestinationUnit         UnitOrDepartment `gorm:"foreignKey:DestinationUnitID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"destination_unit,omitempty"`
	OriginBuildingID        *uint            `gorm:"index" json:"origin_building_id"`
	OriginBuilding          *Building        `gorm:"foreignKey:OriginBuildingID;references:ID" json:"origin_building,omitempty"`
	DestinationBuildingID   *uint            `gorm:"index" json:"destination_building_id"`
	DestinationBuilding     *Building        `gorm:"foreignKey:DestinationBuildingID;references:ID" json:"destination_building,omitempty"`
	ScheduledDate           *time.Time       `json:"scheduled_date"`
	Status                  string           `gorm:"type:varchar(30);not null;default:'pending'" json:"status"`
	Remarks                 string           `gorm:"type:text" json:"remarks"`
	CreatedAt               time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt               time.Time        `gorm:"not null" json:"updated_at"`
	DeletedAt               gorm.DeletedAt   `gorm:"index" json:"deleted_at"`
}

func (PropertyTransfer) AuditKey() string { return "transfer" }

func (t PropertyTransfer) AuditID() uint { return t.ID }

func (t PropertyTransfer) AuditState() map[string]interface{} {
	state := map[string]interface{}{
		"ref_no":              t.RefNo,
		"origin_unit_id":      t.OriginUnitID,
		"destination_unit_id": t.DestinationUnitID,
		"status":              t.Status,
		"remarks":             t.Remarks,
	}
	if t.OriginBuildingID != nil {
		state["origin_building_id"] = *t.OriginBuildingID
	}
	if t.DestinationBuildingID != nil {
		state["destination_building_id"] = *t.DestinationBuildingID
	}
	if t.ScheduledDate != nil {
		state["scheduled_date"] = t.ScheduledDate.Format("2006-01-02")
	}
	return state
}

func (t PropertyTransfer) ScopeID() *uint {
	id := t.OriginUnitID
	return &id
}
