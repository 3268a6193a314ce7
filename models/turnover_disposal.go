package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TurnoverDisposalTypeTurnover = "turnover"
	TurnoverDisposalTypeDisposal = "disposal"
)

type TurnoverDisposal struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	RefNo           string           `gorm:"type:varchar(100);not null;uniqueIndex" json:"ref_no"`
	Type            string           `gorm:"type:varchar(20);not null" json:"type"`
	IssuingOfficeID uint             `gorm:"not null;index" json:"issuing_office_id"`
	IssuingOffice   UnitOrDepartment `gorm:"foreignKey:IssuingOfficeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"issuing_office,omitempty"`
	PersonnelID     *uint            `gorm:"index" json:"personnel_id"`
	Personnel       *Personnel       `gorm:"foreignKey:PersonnelID;references:ID" json:"personnel,omitempty"`
	Status          string           `gorm:"type:varchar(30);not null;default:'pending'" json:"status"`
	Remarks         string           `gorm:"type:text" json:"remarks"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"deleted_at"`
}

func (TurnoverDisposal) AuditKey() string { return "turnover-disposal" }

func (t TurnoverDisposal) AuditID() uint { return t.ID }

func (t TurnoverDisposal) AuditState() map[string]interface{} {
	state := map[string]interface{}{
		"ref_no":            t.RefNo,
		"type":              t.Type,
		"issuing_office_id": t.IssuingOfficeID,
		"status":            t.Status,
		"remarks":           t.Remarks,
	}
	if t.PersonnelID != nil {
		state["personnel_id"] = *t.PersonnelID
	}
	return state
}

func (t TurnoverDisposal) ScopeID() *uint {
	id := t.IssuingOfficeID
	return &id
}
