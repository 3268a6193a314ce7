package models

import (
	"time"

	"gorm.io/gorm"
)

type Personnel struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	FullName           string           `gorm:"type:varchar(255);not null" json:"full_name"`
	Position           string           `gorm:"type:varchar(100)" json:"position"`
	UnitOrDepartmentID uint             `gorm:"not null;index" json:"unit_or_department_id"`
	UnitOrDepartment   UnitOrDepartment `gorm:"foreignKey:UnitOrDepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"unit_or_department,omitempty"`
	Status             string           `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"deleted_at"`
}

func (Personnel) AuditKey() string { return "personnel" }

func (p Personnel) AuditID() uint { return p.ID }

func (p Personnel) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"full_name":             p.FullName,
		"position":              p.Position,
		"unit_or_department_id": p.UnitOrDepartmentID,
		"status":                p.Status,
	}
}

func (p Personnel) ScopeID() *uint {
	id := p.UnitOrDepartmentID
	return &id
}
