package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150);not null;uniqueIndex" json:"name"`
	Type      string         `gorm:"type:varchar(30);not null;default:'equipment'" json:"type"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Category) AuditKey() string { return "category" }

func (c Category) AuditID() uint { return c.ID }

func (c Category) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"name": c.Name,
		"type": c.Type,
	}
}

func (Category) ScopeID() *uint { return nil }
