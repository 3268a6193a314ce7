package audit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/models"
)

func setupAuditDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UnitOrDepartment{},
		&models.Building{},
		&models.TurnoverDisposal{},
		&models.VerificationForm{},
		&models.ChangeRecord{},
	)
	require.NoError(t, err)
	return db
}

func changeRecords(t *testing.T, db *gorm.DB, subjectType string) []models.ChangeRecord {
	t.Helper()
	var records []models.ChangeRecord
	err := db.Where("subject_type = ?", subjectType).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	require.NoError(t, err)
	return records
}

func uintPtr(v uint) *uint { return &v }

func TestCreateEmitsOneRecord(t *testing.T) {
	db := setupAuditDB(t, "audit_create")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.Building](db, rec)

	building := models.Building{Name: "Science Hall", Code: "SCI-01"}
	require.NoError(t, repo.Create(uintPtr(7), &building))
	assert.NotZero(t, building.ID)

	records := changeRecords(t, db, "building")
	require.Len(t, records, 1)
	assert.Equal(t, models.ActionCreate, records[0].Action)
	assert.Equal(t, building.ID, records[0].SubjectID)
	require.NotNil(t, records[0].ActorID)
	assert.Equal(t, uint(7), *records[0].ActorID)
	assert.Empty(t, records[0].OldValues)
	assert.Equal(t, "Science Hall", records[0].NewValues["name"])
}

func TestUpdateRecordsOnlyChangedFields(t *testing.T) {
	db := setupAuditDB(t, "audit_update")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.Building](db, rec)

	building := models.Building{Name: "Science Hall", Code: "SCI-01"}
	require.NoError(t, repo.Create(nil, &building))

	require.NoError(t, repo.Update(nil, &building, map[string]interface{}{
		"name": "Engineering Hall",
		"code": "SCI-01",
	}))

	records := changeRecords(t, db, "building")
	require.Len(t, records, 2)
	update := records[1]
	assert.Equal(t, models.ActionUpdate, update.Action)
	assert.Equal(t, map[string]interface{}{"name": "Science Hall"}, map[string]interface{}(update.OldValues))
	assert.Equal(t, map[string]interface{}{"name": "Engineering Hall"}, map[string]interface{}(update.NewValues))
}

func TestUpdateWithNoEffectiveChangeEmitsNothing(t *testing.T) {
	db := setupAuditDB(t, "audit_noop")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.Building](db, rec)

	building := models.Building{Name: "Science Hall", Code: "SCI-01"}
	require.NoError(t, repo.Create(nil, &building))

	require.NoError(t, repo.Update(nil, &building, map[string]interface{}{
		"name": "Science Hall",
	}))

	assert.Len(t, changeRecords(t, db, "building"), 1)
}

func TestUpdateClearingDeletedAtIsNotLogged(t *testing.T) {
	db := setupAuditDB(t, "audit_restore_only")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.Building](db, rec)

	building := models.Building{Name: "Science Hall", Code: "SCI-01"}
	require.NoError(t, repo.Create(nil, &building))
	require.NoError(t, repo.Delete(nil, &building))

	require.NoError(t, repo.Update(nil, &building, map[string]interface{}{
		"deleted_at": nil,
	}))

	// The row is live again but no update record was written.
	var found models.Building
	require.NoError(t, db.First(&found, building.ID).Error)

	records := changeRecords(t, db, "building")
	require.Len(t, records, 2)
	assert.Equal(t, models.ActionCreate, records[0].Action)
	assert.Equal(t, models.ActionDelete, records[1].Action)
}

func TestDeleteSoftDeletesAndRecordsFullState(t *testing.T) {
	db := setupAuditDB(t, "audit_delete")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.Building](db, rec)

	building := models.Building{Name: "Science Hall", Code: "SCI-01", Address: "North Campus"}
	require.NoError(t, repo.Create(nil, &building))
	require.NoError(t, repo.Delete(uintPtr(3), &building))

	var found models.Building
	assert.ErrorIs(t, db.First(&found, building.ID).Error, gorm.ErrRecordNotFound)
	require.NoError(t, db.Unscoped().First(&found, building.ID).Error)
	assert.True(t, found.DeletedAt.Valid)

	records := changeRecords(t, db, "building")
	require.Len(t, records, 2)
	del := records[1]
	assert.Equal(t, models.ActionDelete, del.Action)
	assert.Equal(t, "Science Hall", del.OldValues["name"])
	assert.Equal(t, "North Campus", del.OldValues["address"])
	assert.Empty(t, del.NewValues)
}

func TestRestoreRevivesAndLogsRestore(t *testing.T) {
	db := setupAuditDB(t, "audit_restore")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.Building](db, rec)

	building := models.Building{Name: "Science Hall", Code: "SCI-01"}
	require.NoError(t, repo.Create(nil, &building))
	require.NoError(t, repo.Delete(nil, &building))

	require.NoError(t, repo.Restore(uintPtr(9), building.ID))

	var found models.Building
	require.NoError(t, db.First(&found, building.ID).Error)

	records := changeRecords(t, db, "building")
	require.Len(t, records, 3)
	assert.Equal(t, models.ActionRestore, records[2].Action)
	assert.Equal(t, "Science Hall", records[2].NewValues["name"])

	// A second restore finds no soft-deleted row.
	assert.ErrorIs(t, repo.Restore(nil, building.ID), audit.ErrNotFound)
}

func TestRestoreUnknownIDReturnsNotFound(t *testing.T) {
	db := setupAuditDB(t, "audit_restore_missing")
	repo := audit.NewRepository[models.Building](db, audit.NewRecorder())

	assert.ErrorIs(t, repo.Restore(nil, 9999), audit.ErrNotFound)
}

func newVerificationCascade(rec *audit.Recorder) audit.Cascade {
	return audit.NewSingletonCascade(rec, "turnover_disposal_id", func(parentID uint) models.VerificationForm {
		return models.VerificationForm{TurnoverDisposalID: parentID, Status: "pending"}
	})
}

func seedTurnoverDisposal(t *testing.T, db *gorm.DB, repo *audit.Repository[models.TurnoverDisposal]) models.TurnoverDisposal {
	t.Helper()
	office := models.UnitOrDepartment{Name: "Supply Office", Code: "SUP"}
	require.NoError(t, db.Create(&office).Error)

	record := models.TurnoverDisposal{
		RefNo:           "TDF-20260828-TEST0001",
		Type:            models.TurnoverDisposalTypeTurnover,
		IssuingOfficeID: office.ID,
		Status:          "pending",
	}
	require.NoError(t, repo.Create(nil, &record))
	return record
}

func TestDeleteCascadesToVerificationForm(t *testing.T) {
	db := setupAuditDB(t, "audit_cascade_delete")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.TurnoverDisposal](db, rec,
		audit.WithCascade[models.TurnoverDisposal](newVerificationCascade(rec)))

	record := seedTurnoverDisposal(t, db, repo)
	form := models.VerificationForm{TurnoverDisposalID: record.ID, Status: "pending"}
	require.NoError(t, db.Create(&form).Error)

	require.NoError(t, repo.Delete(nil, &record))

	var found models.VerificationForm
	assert.ErrorIs(t, db.First(&found, form.ID).Error, gorm.ErrRecordNotFound)
	require.NoError(t, db.Unscoped().First(&found, form.ID).Error)
	assert.True(t, found.DeletedAt.Valid)

	formRecords := changeRecords(t, db, "verification-form")
	require.Len(t, formRecords, 1)
	assert.Equal(t, models.ActionDelete, formRecords[0].Action)
}

func TestRestoreRevivesSoftDeletedVerificationForm(t *testing.T) {
	db := setupAuditDB(t, "audit_cascade_restore")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.TurnoverDisposal](db, rec,
		audit.WithCascade[models.TurnoverDisposal](newVerificationCascade(rec)))

	record := seedTurnoverDisposal(t, db, repo)
	form := models.VerificationForm{TurnoverDisposalID: record.ID, Status: "verified"}
	require.NoError(t, db.Create(&form).Error)

	require.NoError(t, repo.Delete(nil, &record))
	require.NoError(t, repo.Restore(nil, record.ID))

	var found models.VerificationForm
	require.NoError(t, db.First(&found, form.ID).Error)
	assert.Equal(t, "verified", found.Status)

	formRecords := changeRecords(t, db, "verification-form")
	require.Len(t, formRecords, 2)
	assert.Equal(t, models.ActionRestore, formRecords[1].Action)
}

func TestRestoreRecreatesMissingVerificationForm(t *testing.T) {
	db := setupAuditDB(t, "audit_cascade_recreate")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.TurnoverDisposal](db, rec,
		audit.WithCascade[models.TurnoverDisposal](newVerificationCascade(rec)))

	record := seedTurnoverDisposal(t, db, repo)
	require.NoError(t, repo.Delete(nil, &record))
	require.NoError(t, repo.Restore(nil, record.ID))

	var form models.VerificationForm
	require.NoError(t, db.Where("turnover_disposal_id = ?", record.ID).First(&form).Error)
	assert.Equal(t, "pending", form.Status)

	formRecords := changeRecords(t, db, "verification-form")
	require.Len(t, formRecords, 1)
	assert.Equal(t, models.ActionCreate, formRecords[0].Action)
}

type failingCascade struct{}

func (failingCascade) OnParentDeleted(tx *gorm.DB, actor *uint, parentID uint) error {
	return fmt.Errorf("%w: %v", audit.ErrCascade, errors.New("dependent write refused"))
}

func (failingCascade) OnParentRestored(tx *gorm.DB, actor *uint, parentID uint) error {
	return fmt.Errorf("%w: %v", audit.ErrCascade, errors.New("dependent write refused"))
}

func TestCascadeFailureRollsBackDelete(t *testing.T) {
	db := setupAuditDB(t, "audit_cascade_rollback")
	rec := audit.NewRecorder()
	repo := audit.NewRepository[models.Building](db, rec,
		audit.WithCascade[models.Building](failingCascade{}))

	building := models.Building{Name: "Science Hall", Code: "SCI-01"}
	require.NoError(t, repo.Create(nil, &building))

	err := repo.Delete(nil, &building)
	assert.ErrorIs(t, err, audit.ErrCascade)

	// The parent is still live and no delete record survived the rollback.
	var found models.Building
	require.NoError(t, db.First(&found, building.ID).Error)
	records := changeRecords(t, db, "building")
	require.Len(t, records, 1)
	assert.Equal(t, models.ActionCreate, records[0].Action)
}
