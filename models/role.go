package models

import (
	"time"

	"gorm.io/gorm"
)

type Role struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Role) AuditKey() string { return "role" }

func (r Role) AuditID() uint { return r.ID }

func (r Role) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"name":        r.Name,
		"description": r.Description,
	}
}

func (Role) ScopeID() *uint { return nil }
