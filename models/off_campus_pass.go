package models

import (
	"time"

	"gorm.io/gorm"
)

type OffCampusPass struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RefNo       string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"ref_no"`
	PersonnelID uint           `gorm:"not null;index" json:"personnel_id"`
	Personnel   Personnel      `gorm:"foreignKey:PersonnelID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"personnel,omitempty"`
	Purpose     string         `gorm:"type:text;not null" json:"purpose"`
	DateIssued  time.Time      `gorm:"not null" json:"date_issued"`
	ReturnDate  *time.Time     `json:"return_date"`
	Status      string         `gorm:"type:varchar(30);not null;default:'issued'" json:"status"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (OffCampusPass) AuditKey() string { return "off-campus" }

func (o OffCampusPass) AuditID() uint { return o.ID }

func (o OffCampusPass) AuditState() map[string]interface{} {
	state := map[string]interface{}{
		"ref_no":       o.RefNo,
		"personnel_id": o.PersonnelID,
		"purpose":      o.Purpose,
		"date_issued":  o.DateIssued.Format("2006-01-02"),
		"status":       o.Status,
	}
	if o.ReturnDate != nil {
		state["return_date"] = o.ReturnDate.Format("2006-01-02")
	}
	return state
}

func (OffCampusPass) ScopeID() *uint { return nil }
