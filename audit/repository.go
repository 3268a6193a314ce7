package audit

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/models"
)

// Repository wraps the persistence of one entity type so that every
// lifecycle transition (create, update, delete, restore) produces exactly
// one change record in the same transaction as the domain write. One
// generic repository replaces a per-type observer for each audited entity;
// per-type variation is confined to the entity's AuditState serializer and
// an optional cascade link.
type Repository[T Auditable] struct {
	db      *gorm.DB
	rec     *Recorder
	cascade Cascade
}

type Option[T Auditable] func(*Repository[T])

// WithCascade attaches the cascade policy invoked when a parent of a
// dependent record is deleted or restored.
func WithCascade[T Auditable](c Cascade) Option[T] {
	return func(r *Repository[T]) { r.cascade = c }
}

func NewRepository[T Auditable](db *gorm.DB, rec *Recorder, opts ...Option[T]) *Repository[T] {
	r := &Repository[T]{db: db, rec: rec}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create persists the entity and its create record atomically.
func (r *Repository[T]) Create(actor *uint, entity *T) error {
	var rec *models.ChangeRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entity).Error; err != nil {
			return err
		}
		e := *entity
		var err error
		rec, err = r.rec.Emit(tx, Change{
			Actor:       actor,
			Action:      actionCreate,
			SubjectType: e.AuditKey(),
			SubjectID:   e.AuditID(),
			After:       e.AuditState(),
			Scope:       e.ScopeID(),
		})
		return err
	})
	if err != nil {
		return err
	}
	r.rec.Notify(rec)
	return nil
}

// Update applies a change-set to the entity and records the resulting
// field-level diff. An empty diff produces no record. A change-set that is
// nothing but the soft-delete flag being cleared is applied without a
// record: that transition belongs to Restore.
func (r *Repository[T]) Update(actor *uint, entity *T, changes map[string]interface{}) error {
	e := *entity
	original := e.AuditState()

	var rec *models.ChangeRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if RestoreOnly(changes) {
			return tx.Unscoped().Model(entity).UpdateColumn("deleted_at", nil).Error
		}
		if err := tx.Model(entity).Updates(changes).Error; err != nil {
			return err
		}
		before, after := Diff(original, changes)
		if len(after) == 0 {
			return nil
		}
		var err error
		rec, err = r.rec.Emit(tx, Change{
			Actor:       actor,
			Action:      actionUpdate,
			SubjectType: e.AuditKey(),
			SubjectID:   e.AuditID(),
			Before:      before,
			After:       after,
			Scope:       e.ScopeID(),
		})
		return err
	})
	if err != nil {
		return err
	}
	r.rec.Notify(rec)
	return nil
}

// Delete records the entity's full state, soft-deletes it, and cascades to
// dependents, all in one transaction.
func (r *Repository[T]) Delete(actor *uint, entity *T) error {
	e := *entity
	var rec *models.ChangeRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		rec, err = r.rec.Emit(tx, Change{
			Actor:       actor,
			Action:      actionDelete,
			SubjectType: e.AuditKey(),
			SubjectID:   e.AuditID(),
			Before:      e.AuditState(),
			Scope:       e.ScopeID(),
		})
		if err != nil {
			return err
		}
		if err := tx.Delete(entity).Error; err != nil {
			return err
		}
		if r.cascade != nil {
			return r.cascade.OnParentDeleted(tx, actor, e.AuditID())
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.rec.Notify(rec)
	return nil
}

// Restore clears the soft-delete flag of the identified record, records a
// restore entry, and reconciles dependents. Restoring is never logged as
// an update. Returns ErrNotFound when no soft-deleted record matches.
func (r *Repository[T]) Restore(actor *uint, id uint) error {
	var rec *models.ChangeRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var entity T
		err := tx.Unscoped().Where("id = ? AND deleted_at IS NOT NULL", id).First(&entity).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Unscoped().Model(&entity).UpdateColumn("deleted_at", nil).Error; err != nil {
			return err
		}
		rec, err = r.rec.Emit(tx, Change{
			Actor:       actor,
			Action:      actionRestore,
			SubjectType: entity.AuditKey(),
			SubjectID:   entity.AuditID(),
			After:       entity.AuditState(),
			Scope:       entity.ScopeID(),
		})
		if err != nil {
			return err
		}
		if r.cascade != nil {
			return r.cascade.OnParentRestored(tx, actor, entity.AuditID())
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.rec.Notify(rec)
	return nil
}
