package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/controllers"
	"github.com/rfdelacruz/property-app/database"
	"github.com/rfdelacruz/property-app/middlewares"
	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/utils"
)

func seedUser(t *testing.T, db *gorm.DB, email, password, roleName string) models.User {
	t.Helper()
	require.NoError(t, database.SeedRoles(db))

	var role models.Role
	require.NoError(t, db.Where("name = ?", roleName).First(&role).Error)

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.User{Name: "Test User", Email: email, Password: hash, RoleID: role.ID}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	authCtrl := controllers.NewAuthController(db)
	r := gin.New()
	r.POST("/login", authCtrl.Login)

	protected := r.Group("/api")
	protected.Use(middlewares.AuthMiddleware())
	protected.GET("/me", authCtrl.Me)
	return r
}

func TestLoginAndMe(t *testing.T) {
	db := setupTestDB(t, "ctrl_auth_login")
	router := setupAuthRouter(db)
	seedUser(t, db, "custodian@example.edu", "s3cret-pass", "property_custodian")

	w := doJSON(t, router, "POST", "/login", map[string]interface{}{
		"email":    "custodian@example.edu",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	req, err := http.NewRequest("GET", "/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := newRecorder(router, req)
	require.Equal(t, http.StatusOK, w2.Code)
	me := decodeResponse(t, w2)
	user := me["data"].(map[string]interface{})
	assert.Equal(t, "custodian@example.edu", user["email"])
	role := user["role"].(map[string]interface{})
	assert.Equal(t, "property_custodian", role["name"])
	// The password hash never leaves the server.
	_, exposed := user["password"]
	assert.False(t, exposed)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t, "ctrl_auth_reject")
	router := setupAuthRouter(db)
	seedUser(t, db, "staff@example.edu", "right-password", "staff")

	w := doJSON(t, router, "POST", "/login", map[string]interface{}{
		"email":    "staff@example.edu",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "POST", "/login", map[string]interface{}{
		"email":    "nobody@example.edu",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	db := setupTestDB(t, "ctrl_auth_missing")
	router := setupAuthRouter(db)

	req, err := http.NewRequest("GET", "/api/me", nil)
	require.NoError(t, err)
	w := newRecorder(router, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, err = http.NewRequest("GET", "/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = newRecorder(router, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
