package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/utils"
)

// ChangeRecordController is the read-only view over the audit trail. The
// change_records table is append-only; no mutation endpoint exists.
type ChangeRecordController struct {
	DB *gorm.DB
}

func NewChangeRecordController(db *gorm.DB) *ChangeRecordController {
	return &ChangeRecordController{DB: db}
}

func (crc *ChangeRecordController) GetChangeRecords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := crc.DB.Model(&models.ChangeRecord{})
	if subjectType := c.Query("subject_type"); subjectType != "" {
		q = q.Where("subject_type = ?", subjectType)
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		q = q.Where("subject_id = ?", subjectID)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if actor := c.Query("actor_id"); actor != "" {
		q = q.Where("actor_id = ?", actor)
	}
	if unit := c.Query("unit_or_department_id"); unit != "" {
		q = q.Where("unit_or_department_id = ?", unit)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var records []models.ChangeRecord
	if err := q.Order("created_at DESC, id DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Change records",
		utils.NewPagedData(records, total, page, pageSize))
}

// GetSubjectHistory returns the full ordered audit trail of one record.
func (crc *ChangeRecordController) GetSubjectHistory(c *gin.Context) {
	subjectType := c.Param("subject_type")
	subjectID, _ := strconv.Atoi(c.Param("subject_id"))

	var records []models.ChangeRecord
	if err := crc.DB.
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Subject history", records)
}
