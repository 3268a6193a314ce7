package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/controllers"
	"github.com/rfdelacruz/property-app/database"
	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/trash"
	"github.com/rfdelacruz/property-app/utils"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// asActor stands in for the auth middleware in tests.
func asActor(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("role", role)
		c.Next()
	}
}

func setupTrashRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	rec := audit.NewRecorder()

	r := gin.New()
	r.Use(asActor(1, "admin"))

	buildingCtrl := controllers.NewBuildingController(db, rec)
	trashCtrl := controllers.NewTrashController(db, trash.NewRegistry(db, rec))
	changeCtrl := controllers.NewChangeRecordController(db)

	r.GET("/buildings", buildingCtrl.GetAllBuildings)
	r.POST("/buildings", buildingCtrl.CreateBuilding)
	r.PATCH("/buildings/:building_id", buildingCtrl.UpdateBuilding)
	r.DELETE("/buildings/:building_id", buildingCtrl.DeleteBuilding)
	r.GET("/trash/types", trashCtrl.GetTypes)
	r.GET("/trash/:entity_type", trashCtrl.GetTrash)
	r.POST("/trash/:entity_type/:id/restore", trashCtrl.RestoreTrash)
	r.GET("/change-records", changeCtrl.GetChangeRecords)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newRecorder(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBuildingLifecycleThroughTrash(t *testing.T) {
	db := setupTestDB(t, "ctrl_lifecycle")
	router := setupTrashRouter(db)

	// Create.
	w := doJSON(t, router, "POST", "/buildings", map[string]interface{}{
		"name": "Old Annex",
		"code": "OA-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	buildingID := int(data["id"].(float64))
	require.NotZero(t, buildingID)

	// Update.
	w = doJSON(t, router, "PATCH", fmt.Sprintf("/buildings/%d", buildingID), map[string]interface{}{
		"name": "Old Annex B",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Delete.
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/buildings/%d", buildingID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Gone from the live listing.
	w = doJSON(t, router, "GET", "/buildings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	assert.Nil(t, resp["data"])

	// Present in the trash.
	w = doJSON(t, router, "GET", "/trash/building", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	paged := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), paged["total"])
	items := paged["items"].([]interface{})
	require.Len(t, items, 1)
	entry := items[0].(map[string]interface{})
	assert.Equal(t, float64(buildingID), entry["id"])
	assert.Equal(t, "Old Annex B (OA-01)", entry["display_summary"])

	// Restore.
	w = doJSON(t, router, "POST", fmt.Sprintf("/trash/building/%d/restore", buildingID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var building models.Building
	require.NoError(t, db.First(&building, buildingID).Error)

	// Restoring again is a 404: the record is live.
	w = doJSON(t, router, "POST", fmt.Sprintf("/trash/building/%d/restore", buildingID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Full audit trail: create, update, delete, restore.
	w = doJSON(t, router, "GET", fmt.Sprintf("/change-records?subject_type=building&subject_id=%d", buildingID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	paged = resp["data"].(map[string]interface{})
	assert.Equal(t, float64(4), paged["total"])
}

func TestGetTrashTypes(t *testing.T) {
	db := setupTestDB(t, "ctrl_trash_types")
	router := setupTrashRouter(db)

	w := doJSON(t, router, "GET", "/trash/types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	types := resp["data"].([]interface{})
	assert.Len(t, types, 16)
}

func TestGetTrashUnknownTypeIsBadRequest(t *testing.T) {
	db := setupTestDB(t, "ctrl_trash_unknown")
	router := setupTrashRouter(db)

	w := doJSON(t, router, "GET", "/trash/vehicles", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/trash/vehicles/1/restore", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTrashPassesFiltersThrough(t *testing.T) {
	db := setupTestDB(t, "ctrl_trash_filters")
	router := setupTrashRouter(db)

	electronics := models.Category{Name: "Electronics"}
	furniture := models.Category{Name: "Furniture"}
	require.NoError(t, db.Create(&electronics).Error)
	require.NoError(t, db.Create(&furniture).Error)
	for _, cat := range []models.Category{electronics, furniture} {
		m := models.AssetModel{CategoryID: cat.ID, Brand: "Acme", Model: "M-" + cat.Name}
		require.NoError(t, db.Create(&m).Error)
		require.NoError(t, db.Delete(&m).Error)
	}

	url := fmt.Sprintf("/trash/asset-model?category_id=%d", electronics.ID)
	w := doJSON(t, router, "GET", url, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	paged := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), paged["total"])
	items := paged["items"].([]interface{})
	require.Len(t, items, 1)
	entry := items[0].(map[string]interface{})
	assert.Equal(t, "Acme M-Electronics (Electronics)", entry["display_summary"])
}
