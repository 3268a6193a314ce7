package models

import (
	"time"

	"gorm.io/gorm"
)

type BuildingRoom struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	BuildingID uint           `gorm:"not null;index" json:"building_id"`
	Building   Building       `gorm:"foreignKey:BuildingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"building,omitempty"`
	Room       string         `gorm:"type:varchar(100);not null" json:"room"`
	Floor      string         `gorm:"type:varchar(50)" json:"floor"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (BuildingRoom) AuditKey() string { return "building-room" }

func (r BuildingRoom) AuditID() uint { return r.ID }

func (r BuildingRoom) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"building_id": r.BuildingID,
		"room":        r.Room,
		"floor":       r.Floor,
	}
}

func (BuildingRoom) ScopeID() *uint { return nil }
