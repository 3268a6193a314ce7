package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"type:varchar(255);not null" json:"-"`
	RoleID    uint           `gorm:"not null;index" json:"role_id"`
	Role      Role           `gorm:"foreignKey:RoleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"role,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (User) AuditKey() string { return "user" }

func (u User) AuditID() uint { return u.ID }

// AuditState leaves the password hash out of the audit trail.
func (u User) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"name":    u.Name,
		"email":   u.Email,
		"role_id": u.RoleID,
	}
}

func (User) ScopeID() *uint { return nil }
