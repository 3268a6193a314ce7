package models

import (
	"time"

	"gorm.io/gorm"
)

type Building struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Code      string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Address   string         `gorm:"type:varchar(255)" json:"address"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Building) AuditKey() string { return "building" }

func (b Building) AuditID() uint { return b.ID }

func (b Building) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"name":    b.Name,
		"code":    b.Code,
		"address": b.Address,
	}
}

func (Building) ScopeID() *uint { return nil }
