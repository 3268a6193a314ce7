package models

import (
	"time"

	"gorm.io/gorm"
)

type UnitOrDepartment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Code        string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (UnitOrDepartment) AuditKey() string { return "unit-or-department" }

func (u UnitOrDepartment) AuditID() uint { return u.ID }

func (u UnitOrDepartment) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"name":        u.Name,
		"code":        u.Code,
		"description": u.Description,
	}
}

func (u UnitOrDepartment) ScopeID() *uint {
	id := u.ID
	return &id
}
