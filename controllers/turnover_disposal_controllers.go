package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/middlewares"
	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/trash"
	"github.com/rfdelacruz/property-app/utils"
)

type TurnoverDisposalController struct {
	DB      *gorm.DB
	records *audit.Repository[models.TurnoverDisposal]
	forms   *audit.Repository[models.VerificationForm]
}

func NewTurnoverDisposalController(db *gorm.DB, rec *audit.Recorder) *TurnoverDisposalController {
	return &TurnoverDisposalController{
		DB: db,
		records: audit.NewRepository[models.TurnoverDisposal](db, rec,
			audit.WithCascade[models.TurnoverDisposal](trash.NewVerificationCascade(rec))),
		forms: audit.NewRepository[models.VerificationForm](db, rec),
	}
}

type turnoverDisposalInput struct {
	Type            *string `json:"type"`
	IssuingOfficeID *uint   `json:"issuing_office_id"`
	PersonnelID     *uint   `json:"personnel_id"`
	Status          *string `json:"status"`
	Remarks         *string `json:"remarks"`
}

func (tdc *TurnoverDisposalController) GetAllRecords(c *gin.Context) {
	q := tdc.DB.Preload("IssuingOffice").Preload("Personnel")
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}
	if office := c.Query("issuing_office_id"); office != "" {
		q = q.Where("issuing_office_id = ?", office)
	}

	var records []models.TurnoverDisposal
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of turnover/disposal records", records)
}

func (tdc *TurnoverDisposalController) GetRecordByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("record_id"))

	var record models.TurnoverDisposal
	if err := tdc.DB.Preload("IssuingOffice").Preload("Personnel").First(&record, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("turnover/disposal record not found"))
		return
	}

	var form models.VerificationForm
	if err := tdc.DB.Where("turnover_disposal_id = ?", record.ID).First(&form).Error; err != nil {
		utils.RespondJSON(c, http.StatusOK, "Turnover/disposal detail", gin.H{"record": record})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Turnover/disposal detail", gin.H{
		"record":            record,
		"verification_form": form,
	})
}

func (tdc *TurnoverDisposalController) CreateRecord(c *gin.Context) {
	var in turnoverDisposalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Type == nil || in.IssuingOfficeID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("type and issuing_office_id are required"))
		return
	}
	if *in.Type != models.TurnoverDisposalTypeTurnover && *in.Type != models.TurnoverDisposalTypeDisposal {
		utils.RespondError(c, http.StatusBadRequest, errors.New("type must be turnover or disposal"))
		return
	}

	actor := middlewares.ActorID(c)
	record := models.TurnoverDisposal{
		RefNo:           newRefNo("TDF"),
		Type:            *in.Type,
		IssuingOfficeID: *in.IssuingOfficeID,
		PersonnelID:     in.PersonnelID,
		Status:          "pending",
	}
	if in.Remarks != nil {
		record.Remarks = *in.Remarks
	}

	if err := tdc.records.Create(actor, &record); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Every turnover/disposal starts with a pending verification form.
	form := models.VerificationForm{
		TurnoverDisposalID: record.ID,
		Status:             "pending",
	}
	if err := tdc.forms.Create(actor, &form); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Turnover/disposal created", gin.H{
		"record":            record,
		"verification_form": form,
	})
}

func (tdc *TurnoverDisposalController) UpdateRecord(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("record_id"))

	var record models.TurnoverDisposal
	if err := tdc.DB.First(&record, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("turnover/disposal record not found"))
		return
	}

	var in turnoverDisposalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.Type != nil {
		if *in.Type != models.TurnoverDisposalTypeTurnover && *in.Type != models.TurnoverDisposalTypeDisposal {
			utils.RespondError(c, http.StatusBadRequest, errors.New("type must be turnover or disposal"))
			return
		}
		changes["type"] = *in.Type
	}
	if in.IssuingOfficeID != nil {
		changes["issuing_office_id"] = *in.IssuingOfficeID
	}
	if in.PersonnelID != nil {
		changes["personnel_id"] = *in.PersonnelID
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.Remarks != nil {
		changes["remarks"] = *in.Remarks
	}

	if err := tdc.records.Update(middlewares.ActorID(c), &record, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Turnover/disposal updated", record)
}

// DeleteRecord soft-deletes the record and cascades to its verification
// form in the same transaction.
func (tdc *TurnoverDisposalController) DeleteRecord(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("record_id"))

	var record models.TurnoverDisposal
	if err := tdc.DB.First(&record, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("turnover/disposal record not found"))
		return
	}

	if err := tdc.records.Delete(middlewares.ActorID(c), &record); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Turnover/disposal deleted", gin.H{"record_id": record.ID})
}

type verificationFormInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (tdc *TurnoverDisposalController) UpdateVerificationForm(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("record_id"))

	var form models.VerificationForm
	if err := tdc.DB.Where("turnover_disposal_id = ?", id).First(&form).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("verification form not found"))
		return
	}

	var in verificationFormInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.Notes != nil {
		changes["notes"] = *in.Notes
	}

	if err := tdc.forms.Update(middlewares.ActorID(c), &form, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Verification form updated", form)
}
