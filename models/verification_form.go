package models

import (
	"time"

	"gorm.io/gorm"
)

// VerificationForm is the 1:1 verification sub-record of a turnover/disposal.
// Its lifecycle follows the parent: deleting the parent soft-deletes it,
// restoring the parent restores it or recreates it in the pending state.
type VerificationForm struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	TurnoverDisposalID uint           `gorm:"not null;uniqueIndex" json:"turnover_disposal_id"`
	Status             string         `gorm:"type:varchar(30);not null;default:'pending'" json:"status"`
	Notes              string         `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (VerificationForm) AuditKey() string { return "verification-form" }

func (v VerificationForm) AuditID() uint { return v.ID }

func (v VerificationForm) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"turnover_disposal_id": v.TurnoverDisposalID,
		"status":               v.Status,
		"notes":                v.Notes,
	}
}

func (VerificationForm) ScopeID() *uint { return nil }
