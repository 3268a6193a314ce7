package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rfdelacruz/property-app/audit"
	"github.com/rfdelacruz/property-app/middlewares"
	"github.com/rfdelacruz/property-app/models"
	"github.com/rfdelacruz/property-app/utils"
)

type TransferController struct {
	DB        *gorm.DB
	transfers *audit.Repository[models.PropertyTransfer]
}

func NewTransferController(db *gorm.DB, rec *audit.Recorder) *TransferController {
	return &TransferController{
		DB:        db,
		transfers: audit.NewRepository[models.PropertyTransfer](db, rec),
	}
}

// newRefNo builds a short unique reference for generated forms,
// e.g. PTR-20260828-1A2B3C4D.
func newRefNo(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), token)
}

type transferInput struct {
	OriginUnitID          *uint   `json:"origin_unit_id"`
	DestinationUnitID     *uint   `json:"destination_unit_id"`
	OriginBuildingID      *uint   `json:"origin_building_id"`
	DestinationBuildingID *uint   `json:"destination_building_id"`
	ScheduledDate         *string `json:"scheduled_date"`
	Status                *string `json:"status"`
	Remarks               *string `json:"remarks"`
}

func (tc *TransferController) GetAllTransfers(c *gin.Context) {
	q := tc.DB.Preload("OriginUnit").Preload("DestinationUnit").
		Preload("OriginBuilding").Preload("DestinationBuilding")
	if origin := c.Query("origin_unit_id"); origin != "" {
		q = q.Where("origin_unit_id = ?", origin)
	}
	if dest := c.Query("destination_unit_id"); dest != "" {
		q = q.Where("destination_unit_id = ?", dest)
	}

	var transfers []models.PropertyTransfer
	if err := q.Order("created_at DESC").Find(&transfers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of property transfers", transfers)
}

func (tc *TransferController) GetTransferByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("transfer_id"))

	var transfer models.PropertyTransfer
	if err := tc.DB.Preload("OriginUnit").Preload("DestinationUnit").
		Preload("OriginBuilding").Preload("DestinationBuilding").
		First(&transfer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transfer not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Transfer detail", transfer)
}

func (tc *TransferController) CreateTransfer(c *gin.Context) {
	var in transferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.OriginUnitID == nil || in.DestinationUnitID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("origin_unit_id and destination_unit_id are required"))
		return
	}

	transfer := models.PropertyTransfer{
		RefNo:                 newRefNo("PTR"),
		OriginUnitID:          *in.OriginUnitID,
		DestinationUnitID:     *in.DestinationUnitID,
		OriginBuildingID:      in.OriginBuildingID,
		DestinationBuildingID: in.DestinationBuildingID,
		Status:                "pending",
	}
	if in.ScheduledDate != nil {
		date, err := time.Parse("2006-01-02", *in.ScheduledDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("scheduled_date must be YYYY-MM-DD"))
			return
		}
		transfer.ScheduledDate = &date
	}
	if in.Remarks != nil {
		transfer.Remarks = *in.Remarks
	}

	if err := tc.transfers.Create(middlewares.ActorID(c), &transfer); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Transfer created", transfer)
}

func (tc *TransferController) UpdateTransfer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("transfer_id"))

	var transfer models.PropertyTransfer
	if err := tc.DB.First(&transfer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transfer not found"))
		return
	}

	var in transferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.OriginUnitID != nil {
		changes["origin_unit_id"] = *in.OriginUnitID
	}
	if in.DestinationUnitID != nil {
		changes["destination_unit_id"] = *in.DestinationUnitID
	}
	if in.OriginBuildingID != nil {
		changes["origin_building_id"] = *in.OriginBuildingID
	}
	if in.DestinationBuildingID != nil {
		changes["destination_building_id"] = *in.DestinationBuildingID
	}
	if in.ScheduledDate != nil {
		date, err := time.Parse("2006-01-02", *in.ScheduledDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("scheduled_date must be YYYY-MM-DD"))
			return
		}
		changes["scheduled_date"] = date
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.Remarks != nil {
		changes["remarks"] = *in.Remarks
	}

	if err := tc.transfers.Update(middlewares.ActorID(c), &transfer, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Transfer updated", transfer)
}

func (tc *TransferController) DeleteTransfer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("transfer_id"))

	var transfer models.PropertyTransfer
	if err := tc.DB.First(&transfer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("transfer not found"))
		return
	}

	if err := tc.transfers.Delete(middlewares.ActorID(c), &transfer); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Transfer deleted", gin.H{"transfer_id": transfer.ID})
}
