package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/middlewares"
	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/utils"
)

type OffCampusController struct {
	DB     *gorm.DB
	passes *audit.Repository[models.OffCampusPass]
}

func NewOffCampusController(db *gorm.DB, rec *audit.Recorder) *OffCampusController {
	return &OffCampusController{
		DB:     db,
		passes: audit.NewRepository[models.OffCampusPass](db, rec),
	}
}

type offCampusInput struct {
	PersonnelID *uint   `json:"personnel_id"`
	Purpose     *string `json:"purpose"`
	ReturnDate  *string `json:"return_date"`
	Status      *string `json:"status"`
}

func (oc *OffCampusController) GetAllPasses(c *gin.Context) {
	q := oc.DB.Preload("Personnel")
	if personnel := c.Query("personnel_id"); personnel != "" {
		q = q.Where("personnel_id = ?", personnel)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var passes []models.OffCampusPass
	if err := q.Order("date_issued DESC").Find(&passes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of off-campus passes", passes)
}

func (oc *OffCampusController) CreatePass(c *gin.Context) {
	var in offCampusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.PersonnelID == nil || in.Purpose == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("personnel_id and purpose are required"))
		return
	}

	pass := models.OffCampusPass{
		RefNo:       newRefNo("OCP"),
		PersonnelID: *in.PersonnelID,
		Purpose:     *in.Purpose,
		DateIssued:  time.Now(),
		Status:      "issued",
	}
	if in.ReturnDate != nil {
		date, err := time.Parse("2006-01-02", *in.ReturnDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("return_date must be YYYY-MM-DD"))
			return
		}
		pass.ReturnDate = &date
	}

	if err := oc.passes.Create(middlewares.ActorID(c), &pass); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Off-campus pass created", pass)
}

func (oc *OffCampusController) UpdatePass(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pass_id"))

	var pass models.OffCampusPass
	if err := oc.DB.First(&pass, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("off-campus pass not found"))
		return
	}

	var in offCampusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.PersonnelID != nil {
		changes["personnel_id"] = *in.PersonnelID
	}
	if in.Purpose != nil {
		changes["purpose"] = *in.Purpose
	}
	if in.ReturnDate != nil {
		date, err := time.Parse("2006-01-02", *in.ReturnDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("return_date must be YYYY-MM-DD"))
			return
		}
		changes["return_date"] = date
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}

	if err := oc.passes.Update(middlewares.ActorID(c), &pass, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Off-campus pass updated", pass)
}

func (oc *OffCampusController) DeletePass(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pass_id"))

	var pass models.OffCampusPass
	if err := oc.DB.First(&pass, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("off-campus pass not found"))
		return
	}

	if err := oc.passes.Delete(middlewares.ActorID(c), &pass); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Off-campus pass deleted", gin.H{"pass_id": pass.ID})
}
