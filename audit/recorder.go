package audit

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/models"
)

const (
	actionCreate  = models.ActionCreate
	actionUpdate  = models.ActionUpdate
	actionDelete  = models.ActionDelete
	actionRestore = models.ActionRestore
)

// Auditable is implemented by every domain entity the audit subsystem
// observes. AuditState returns the entity's business fields keyed by column
// name; ScopeID returns the optional unit/department the record belongs to.
type Auditable interface {
	AuditKey() string
	AuditID() uint
	AuditState() map[string]interface{}
	ScopeID() *uint
}

// Change is one normalized lifecycle event handed to the recorder.
type Change struct {
	Actor       *uint
	Action      string
	SubjectType string
	SubjectID   uint
	Before      map[string]interface{}
	After       map[string]interface{}
	Scope       *uint
}

// Notifier receives committed change records, e.g. for broadcasting to
// admin dashboards. Implementations must not block.
type Notifier interface {
	ChangeRecorded(rec models.ChangeRecord)
}

// Recorder persists change records. Records are append-only: the recorder
// exposes no update or delete path.
type Recorder struct {
	notifier Notifier
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetNotifier attaches a post-commit notification sink.
func (r *Recorder) SetNotifier(n Notifier) {
	r.notifier = n
}

// Emit writes one change record inside the caller's transaction. A failed
// write is reported as ErrAuditWrite so the caller rolls the whole
// operation back.
func (r *Recorder) Emit(tx *gorm.DB, ch Change) (*models.ChangeRecord, error) {
	rec := models.ChangeRecord{
		ActorID:            ch.Actor,
		Action:             ch.Action,
		SubjectType:        ch.SubjectType,
		SubjectID:          ch.SubjectID,
		OldValues:          models.JSONMap(ch.Before),
		NewValues:          models.JSONMap(ch.After),
		UnitOrDepartmentID: ch.Scope,
	}
	if err := tx.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuditWrite, err)
	}
	return &rec, nil
}

// Notify forwards a committed record to the notifier, if one is attached.
// Call it only after the enclosing transaction has committed.
func (r *Recorder) Notify(rec *models.ChangeRecord) {
	if r.notifier != nil && rec != nil {
		r.notifier.ChangeRecorded(*rec)
	}
}
