package models

import (
	"time"

	"gorm.io/gorm"
)

// Signatory binds a personnel record to the designation under which they
// sign generated forms.
type Signatory struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	PersonnelID   uint           `gorm:"not null;index" json:"personnel_id"`
	Personnel     Personnel      `gorm:"foreignKey:PersonnelID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"personnel,omitempty"`
	DesignationID uint           `gorm:"not null;index" json:"designation_id"`
	Designation   Designation    `gorm:"foreignKey:DesignationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"designation,omitempty"`
	FundCluster   string         `gorm:"type:varchar(50)" json:"fund_cluster"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Signatory) AuditKey() string { return "signatory" }

func (s Signatory) AuditID() uint { return s.ID }

func (s Signatory) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"personnel_id":   s.PersonnelID,
		"designation_id": s.DesignationID,
		"fund_cluster":   s.FundCluster,
	}
}

func (Signatory) ScopeID() *uint { return nil }
