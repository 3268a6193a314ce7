package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Audit actions. Restore is its own action, never logged as an update.
const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionRestore = "restore"
)

// JSONMap stores a field→value snapshot as a JSON column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for JSONMap")
	}
	if len(raw) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}

// ChangeRecord is one audit entry per observed lifecycle transition.
// Rows are append-only: nothing in the application updates or deletes them.
type ChangeRecord struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ActorID            *uint     `gorm:"index" json:"actor_id"`
	Action             string    `gorm:"type:varchar(10);not null;index:idx_subject" json:"action"`
	SubjectType        string    `gorm:"type:varchar(50);not null;index:idx_subject" json:"subject_type"`
	SubjectID          uint      `gorm:"not null;index:idx_subject" json:"subject_id"`
	OldValues          JSONMap   `gorm:"type:json" json:"old_values"`
	NewValues          JSONMap   `gorm:"type:json" json:"new_values"`
	UnitOrDepartmentID *uint     `gorm:"index" json:"unit_or_department_id"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}
