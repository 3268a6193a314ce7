package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/middlewares"
	"github.com/rfdelacruz/property-app/trash"
	"github.com/rfdelacruz/property-app/utils"
)

// TrashController is the administrative trash-bin surface: list soft-deleted
// records per entity type and restore them.
type TrashController struct {
	DB       *gorm.DB
	registry *trash.Registry
}

func NewTrashController(db *gorm.DB, registry *trash.Registry) *TrashController {
	return &TrashController{DB: db, registry: registry}
}

// GetTypes lists the supported trash types and their groups.
func (tc *TrashController) GetTypes(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Supported trash types", tc.registry.Types())
}

// reserved query keys; everything else is treated as a type-specific filter.
var reservedTrashParams = map[string]bool{
	"search":    true,
	"sort_by":   true,
	"sort_dir":  true,
	"page":      true,
	"page_size": true,
}

// GetTrash lists one page of soft-deleted records of the given type.
func (tc *TrashController) GetTrash(c *gin.Context) {
	entityType := c.Param("entity_type")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if reservedTrashParams[key] || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	params := trash.Params{
		Filters:  filters,
		Search:   c.Query("search"),
		SortBy:   c.Query("sort_by"),
		SortDir:  c.Query("sort_dir"),
		Page:     page,
		PageSize: pageSize,
	}

	entries, total, err := tc.registry.Query(entityType, params)
	if err != nil {
		if errors.Is(err, trash.ErrUnknownEntityType) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Trash entries",
		utils.NewPagedData(entries, total, params.Page, params.PageSize))
}

// RestoreTrash reverses the soft-delete of one record.
func (tc *TrashController) RestoreTrash(c *gin.Context) {
	entityType := c.Param("entity_type")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	err = tc.registry.Restore(entityType, middlewares.ActorID(c), uint(id))
	switch {
	case err == nil:
		utils.RespondJSON(c, http.StatusOK, "Record restored", gin.H{
			"entity_type": entityType,
			"id":          id,
		})
	case errors.Is(err, trash.ErrUnknownEntityType):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, audit.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
