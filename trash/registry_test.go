package trash_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/trash"
)

func setupTrashDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.UnitOrDepartment{},
		&models.Building{},
		&models.BuildingRoom{},
		&models.Personnel{},
		&models.Designation{},
		&models.Signatory{},
		&models.Category{},
		&models.AssetModel{},
		&models.InventoryList{},
		&models.EquipmentCopy{},
		&models.PropertyTransfer{},
		&models.TurnoverDisposal{},
		&models.VerificationForm{},
		&models.OffCampusPass{},
		&models.InventoryScheduling{},
		&models.ChangeRecord{},
	)
	require.NoError(t, err)
	return db
}

func newRegistry(t *testing.T, name string) (*gorm.DB, *trash.Registry) {
	t.Helper()
	db := setupTrashDB(t, name)
	return db, trash.NewRegistry(db, audit.NewRecorder())
}

func TestTypesListsEveryRegisteredKey(t *testing.T) {
	_, reg := newRegistry(t, "trash_types")

	infos := reg.Types()
	require.Len(t, infos, 16)
	assert.Equal(t, "transfer", infos[0].Key)
	assert.Equal(t, trash.GroupForms, infos[0].Group)

	groups := map[string]trash.Group{}
	for _, info := range infos {
		groups[info.Key] = info.Group
	}
	assert.Equal(t, trash.GroupAssets, groups["category"])
	assert.Equal(t, trash.GroupInstitutional, groups["building"])
	assert.Equal(t, trash.GroupUserManagement, groups["signatory"])
}

func TestQueryUnknownTypeFails(t *testing.T) {
	_, reg := newRegistry(t, "trash_unknown")

	_, _, err := reg.Query("vehicles", trash.Params{})
	assert.ErrorIs(t, err, trash.ErrUnknownEntityType)
}

func TestQueryReturnsOnlySoftDeletedRows(t *testing.T) {
	db, reg := newRegistry(t, "trash_scoping")

	live := models.Building{Name: "Main Hall", Code: "MH-01"}
	gone := models.Building{Name: "Old Annex", Code: "OA-01"}
	require.NoError(t, db.Create(&live).Error)
	require.NoError(t, db.Create(&gone).Error)
	require.NoError(t, db.Delete(&gone).Error)

	entries, total, err := reg.Query("building", trash.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, gone.ID, entries[0].ID)
	assert.Equal(t, "building", entries[0].EntityType)
	assert.Equal(t, trash.GroupInstitutional, entries[0].EntityGroup)
	assert.Equal(t, "Old Annex (OA-01)", entries[0].DisplaySummary)
	assert.False(t, entries[0].DeletedAt.IsZero())
}

func TestQueryFilterAndPagination(t *testing.T) {
	db, reg := newRegistry(t, "trash_filters")

	electronics := models.Category{Name: "Electronics"}
	furniture := models.Category{Name: "Furniture"}
	require.NoError(t, db.Create(&electronics).Error)
	require.NoError(t, db.Create(&furniture).Error)

	for i := 0; i < 3; i++ {
		m := models.AssetModel{CategoryID: electronics.ID, Brand: "Acme", Model: fmt.Sprintf("X-%d", i)}
		require.NoError(t, db.Create(&m).Error)
		require.NoError(t, db.Delete(&m).Error)
	}
	other := models.AssetModel{CategoryID: furniture.ID, Brand: "Oakline", Model: "Desk"}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Delete(&other).Error)

	entries, total, err := reg.Query("asset-model", trash.Params{
		Filters:  map[string]string{"category_id": fmt.Sprint(electronics.ID)},
		SortBy:   "model",
		SortDir:  "asc",
		Page:     1,
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme X-0 (Electronics)", entries[0].DisplaySummary)
	assert.Equal(t, "Acme X-1 (Electronics)", entries[1].DisplaySummary)
}

func TestQuerySearchMatchesConfiguredColumnsAndID(t *testing.T) {
	db, reg := newRegistry(t, "trash_search")

	a := models.Building{Name: "Science Hall", Code: "SCI-01"}
	b := models.Building{Name: "Gymnasium", Code: "GYM-01"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Delete(&a).Error)
	require.NoError(t, db.Delete(&b).Error)

	entries, total, err := reg.Query("building", trash.Params{Search: "Science"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, a.ID, entries[0].ID)

	// Numeric search terms also match the primary key.
	entries, total, err = reg.Query("building", trash.Params{Search: fmt.Sprint(b.ID)})
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, int64(1))
	found := false
	for _, e := range entries {
		if e.ID == b.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestQueryUnlistedSortKeyFallsBackToDeletionTime(t *testing.T) {
	db, reg := newRegistry(t, "trash_sort")

	first := models.Building{Name: "Alpha", Code: "A-01"}
	second := models.Building{Name: "Beta", Code: "B-01"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Delete(&first).Error)
	require.NoError(t, db.Delete(&second).Error)

	// "address" is a real column but not in the allow-list.
	entries, _, err := reg.Query("building", trash.Params{SortBy: "address", SortDir: "asc"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, !entries[1].DeletedAt.Before(entries[0].DeletedAt))

	entries, _, err = reg.Query("building", trash.Params{SortBy: "name", SortDir: "desc"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Beta (B-01)", entries[0].DisplaySummary)
}

func TestSummaryFallsBackWhenRelationIsGone(t *testing.T) {
	db, reg := newRegistry(t, "trash_orphan")

	m := models.AssetModel{CategoryID: 999, Brand: "Acme", Model: "Projector"}
	require.NoError(t, db.Create(&m).Error)
	require.NoError(t, db.Delete(&m).Error)

	entries, _, err := reg.Query("asset-model", trash.Params{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Projector (Unknown Category)", entries[0].DisplaySummary)
}

func TestRestoreRevivesRecordAndLogsIt(t *testing.T) {
	db := setupTrashDB(t, "trash_restore")
	rec := audit.NewRecorder()
	reg := trash.NewRegistry(db, rec)

	building := models.Building{Name: "Old Annex", Code: "OA-01"}
	require.NoError(t, db.Create(&building).Error)
	require.NoError(t, db.Delete(&building).Error)

	actor := uint(5)
	require.NoError(t, reg.Restore("building", &actor, building.ID))

	var found models.Building
	require.NoError(t, db.First(&found, building.ID).Error)

	var record models.ChangeRecord
	err := db.Where("subject_type = ? AND subject_id = ? AND action = ?",
		"building", building.ID, models.ActionRestore).First(&record).Error
	require.NoError(t, err)
	require.NotNil(t, record.ActorID)
	assert.Equal(t, actor, *record.ActorID)
}

func TestRestoreErrors(t *testing.T) {
	db, reg := newRegistry(t, "trash_restore_errors")

	building := models.Building{Name: "Main Hall", Code: "MH-01"}
	require.NoError(t, db.Create(&building).Error)

	assert.ErrorIs(t, reg.Restore("vehicles", nil, 1), trash.ErrUnknownEntityType)
	// Live record: nothing to restore.
	assert.ErrorIs(t, reg.Restore("building", nil, building.ID), audit.ErrNotFound)
	assert.ErrorIs(t, reg.Restore("building", nil, 9999), audit.ErrNotFound)
}

func TestRestoreTurnoverDisposalRevivesVerificationForm(t *testing.T) {
	db := setupTrashDB(t, "trash_restore_cascade")
	rec := audit.NewRecorder()
	reg := trash.NewRegistry(db, rec)

	office := models.UnitOrDepartment{Name: "Supply Office", Code: "SUP"}
	require.NoError(t, db.Create(&office).Error)
	record := models.TurnoverDisposal{
		RefNo:           "TDF-20260828-CASCADE1",
		Type:            models.TurnoverDisposalTypeDisposal,
		IssuingOfficeID: office.ID,
		Status:          "pending",
	}
	require.NoError(t, db.Create(&record).Error)
	form := models.VerificationForm{TurnoverDisposalID: record.ID, Status: "verified"}
	require.NoError(t, db.Create(&form).Error)

	require.NoError(t, db.Delete(&record).Error)
	require.NoError(t, db.Delete(&form).Error)

	require.NoError(t, reg.Restore("turnover-disposal", nil, record.ID))

	var foundForm models.VerificationForm
	require.NoError(t, db.First(&foundForm, form.ID).Error)
	assert.Equal(t, "verified", foundForm.Status)
}
