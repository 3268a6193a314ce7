package models

import (
	"time"

	"gorm.io/gorm"
)

type Designation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Designation) AuditKey() string { return "designation" }

func (d Designation) AuditID() uint { return d.ID }

func (d Designation) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"name": d.Name,
	}
}

func (Designation) ScopeID() *uint { return nil }
