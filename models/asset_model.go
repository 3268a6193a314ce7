package models

import (
	"time"

	"gorm.io/gorm"
)

type AssetModel struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Category      Category       `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Brand         string         `gorm:"type:varchar(150);not null" json:"brand"`
	Model         string         `gorm:"type:varchar(150);not null" json:"model"`
	Specification string         `gorm:"type:text" json:"specification"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (AssetModel) AuditKey() string { return "asset-model" }

func (a AssetModel) AuditID() uint { return a.ID }

func (a AssetModel) AuditState() map[string]interface{} {
	return map[string]interface{}{
		"category_id":   a.CategoryID,
		"brand":         a.Brand,
		"model":         a.Model,
		"specification": a.Specification,
	}
}

func (AssetModel) ScopeID() *uint { return nil }
