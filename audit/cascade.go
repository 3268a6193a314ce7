package audit

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Cascade propagates a parent's delete/restore to its dependents. All
// writes happen inside the parent's transaction; any failure is reported as
// ErrCascade and rolls the parent operation back.
type Cascade interface {
	OnParentDeleted(tx *gorm.DB, actor *uint, parentID uint) error
	OnParentRestored(tx *gorm.DB, actor *uint, parentID uint) error
}

// SingletonCascade links a parent type to a 1:1 dependent record.
//
// Dependent states and transitions:
//
//	parent deleted,  dependent active        -> soft-deleted
//	parent deleted,  dependent absent/gone   -> no-op
//	parent restored, dependent absent        -> recreated in default state
//	parent restored, dependent soft-deleted  -> active
//	parent restored, dependent active        -> no-op
type SingletonCascade[D Auditable] struct {
	rec        *Recorder
	foreignKey string
	newDefault func(parentID uint) D
}

func NewSingletonCascade[D Auditable](rec *Recorder, foreignKey string, newDefault func(parentID uint) D) *SingletonCascade[D] {
	return &SingletonCascade[D]{
		rec:        rec,
		foreignKey: foreignKey,
		newDefault: newDefault,
	}
}

func (c *SingletonCascade[D]) OnParentDeleted(tx *gorm.DB, actor *uint, parentID uint) error {
	var dep D
	err := tx.Where(c.foreignKey+" = ?", parentID).First(&dep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Absent or already soft-deleted.
		return nil
	}
	if err != nil {
		return cascadeErr(err)
	}

	if _, err := c.rec.Emit(tx, Change{
		Actor:       actor,
		Action:      actionDelete,
		SubjectType: dep.AuditKey(),
		SubjectID:   dep.AuditID(),
		Before:      dep.AuditState(),
		Scope:       dep.ScopeID(),
	}); err != nil {
		return err
	}
	if err := tx.Delete(&dep).Error; err != nil {
		return cascadeErr(err)
	}
	return nil
}

func (c *SingletonCascade[D]) OnParentRestored(tx *gorm.DB, actor *uint, parentID uint) error {
	var live D
	err := tx.Where(c.foreignKey+" = ?", parentID).First(&live).Error
	if err == nil {
		// Already consistent.
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cascadeErr(err)
	}

	var dep D
	err = tx.Unscoped().Where(c.foreignKey+" = ?", parentID).First(&dep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.recreate(tx, actor, parentID)
	}
	if err != nil {
		return cascadeErr(err)
	}

	if err := tx.Unscoped().Model(&dep).UpdateColumn("deleted_at", nil).Error; err != nil {
		return cascadeErr(err)
	}
	if _, err := c.rec.Emit(tx, Change{
		Actor:       actor,
		Action:      actionRestore,
		SubjectType: dep.AuditKey(),
		SubjectID:   dep.AuditID(),
		After:       dep.AuditState(),
		Scope:       dep.ScopeID(),
	}); err != nil {
		return err
	}
	return nil
}

func (c *SingletonCascade[D]) recreate(tx *gorm.DB, actor *uint, parentID uint) error {
	dep := c.newDefault(parentID)
	if err := tx.Create(&dep).Error; err != nil {
		return cascadeErr(err)
	}
	if _, err := c.rec.Emit(tx, Change{
		Actor:       actor,
		Action:      actionCreate,
		SubjectType: dep.AuditKey(),
		SubjectID:   dep.AuditID(),
		After:       dep.AuditState(),
		Scope:       dep.ScopeID(),
	}); err != nil {
		return err
	}
	return nil
}

func cascadeErr(err error) error {
	if errors.Is(err, ErrCascade) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrCascade, err)
}
