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

type InventoryController struct {
	DB        *gorm.DB
	items     *audit.Repository[models.InventoryList]
	schedules *audit.Repository[models.InventoryScheduling]
}

func NewInventoryController(db *gorm.DB, rec *audit.Recorder) *InventoryController {
	return &InventoryController{
		DB:        db,
		items:     audit.NewRepository[models.InventoryList](db, rec),
		schedules: audit.NewRepository[models.InventoryScheduling](db, rec),
	}
}

// Inventory items

type inventoryItemInput struct {
	AssetModelID       *uint    `json:"asset_model_id"`
	AssetName          *string  `json:"asset_name"`
	PropertyNo         *string  `json:"property_no"`
	SerialNo           *string  `json:"serial_no"`
	UnitOfMeasure      *string  `json:"unit_of_measure"`
	UnitCost           *float64 `json:"unit_cost"`
	Quantity           *int     `json:"quantity"`
	UnitOrDepartmentID *uint    `json:"unit_or_department_id"`
}

func (ic *InventoryController) GetAllItems(c *gin.Context) {
	q := ic.DB.Preload("AssetModel").Preload("UnitOrDepartment")
	if unit := c.Query("unit_or_department_id"); unit != "" {
		q = q.Where("unit_or_department_id = ?", unit)
	}

	var items []models.InventoryList
	if err := q.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory items", items)
}

func (ic *InventoryController) GetItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.InventoryList
	if err := ic.DB.Preload("AssetModel").Preload("UnitOrDepartment").First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item detail", item)
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var in inventoryItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.AssetModelID == nil || in.AssetName == nil || in.PropertyNo == nil ||
		in.UnitCost == nil || in.UnitOrDepartmentID == nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("asset_model_id, asset_name, property_no, unit_cost and unit_or_department_id are required"))
		return
	}

	item := models.InventoryList{
		AssetModelID:       *in.AssetModelID,
		AssetName:          *in.AssetName,
		PropertyNo:         *in.PropertyNo,
		UnitCost:           *in.UnitCost,
		Quantity:           1,
		UnitOrDepartmentID: *in.UnitOrDepartmentID,
	}
	if in.SerialNo != nil {
		item.SerialNo = *in.SerialNo
	}
	if in.UnitOfMeasure != nil {
		item.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}

	if err := ic.items.Create(middlewares.ActorID(c), &item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Inventory item created", item)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.InventoryList
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	var in inventoryItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.AssetModelID != nil {
		changes["asset_model_id"] = *in.AssetModelID
	}
	if in.AssetName != nil {
		changes["asset_name"] = *in.AssetName
	}
	if in.PropertyNo != nil {
		changes["property_no"] = *in.PropertyNo
	}
	if in.SerialNo != nil {
		changes["serial_no"] = *in.SerialNo
	}
	if in.UnitOfMeasure != nil {
		changes["unit_of_measure"] = *in.UnitOfMeasure
	}
	if in.UnitCost != nil {
		changes["unit_cost"] = *in.UnitCost
	}
	if in.Quantity != nil {
		changes["quantity"] = *in.Quantity
	}
	if in.UnitOrDepartmentID != nil {
		changes["unit_or_department_id"] = *in.UnitOrDepartmentID
	}

	if err := ic.items.Update(middlewares.ActorID(c), &item, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item updated", item)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.InventoryList
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	if err := ic.items.Delete(middlewares.ActorID(c), &item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted", gin.H{"item_id": item.ID})
}

// Inventory schedulings

type schedulingInput struct {
	UnitOrDepartmentID *uint   `json:"unit_or_department_id"`
	BuildingID         *uint   `json:"building_id"`
	ScheduledDate      *string `json:"scheduled_date"`
	Status             *string `json:"status"`
	Remarks            *string `json:"remarks"`
}

func (ic *InventoryController) GetAllSchedulings(c *gin.Context) {
	q := ic.DB.Preload("UnitOrDepartment").Preload("Building")
	if unit := c.Query("unit_or_department_id"); unit != "" {
		q = q.Where("unit_or_department_id = ?", unit)
	}

	var schedules []models.InventoryScheduling
	if err := q.Order("scheduled_date ASC").Find(&schedules).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory schedulings", schedules)
}

func (ic *InventoryController) CreateScheduling(c *gin.Context) {
	var in schedulingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.UnitOrDepartmentID == nil || in.ScheduledDate == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unit_or_department_id and scheduled_date are required"))
		return
	}

	date, err := time.Parse("2006-01-02", *in.ScheduledDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("scheduled_date must be YYYY-MM-DD"))
		return
	}

	s := models.InventoryScheduling{
		UnitOrDepartmentID: *in.UnitOrDepartmentID,
		BuildingID:         in.BuildingID,
		ScheduledDate:      date,
		Status:             "scheduled",
	}
	if in.Status != nil {
		s.Status = *in.Status
	}
	if in.Remarks != nil {
		s.Remarks = *in.Remarks
	}

	if err := ic.schedules.Create(middlewares.ActorID(c), &s); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Inventory scheduling created", s)
}

func (ic *InventoryController) UpdateScheduling(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("scheduling_id"))

	var s models.InventoryScheduling
	if err := ic.DB.First(&s, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory scheduling not found"))
		return
	}

	var in schedulingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.UnitOrDepartmentID != nil {
		changes["unit_or_department_id"] = *in.UnitOrDepartmentID
	}
	if in.BuildingID != nil {
		changes["building_id"] = *in.BuildingID
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

	if err := ic.schedules.Update(middlewares.ActorID(c), &s, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory scheduling updated", s)
}

func (ic *InventoryController) DeleteScheduling(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("scheduling_id"))

	var s models.InventoryScheduling
	if err := ic.DB.First(&s, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory scheduling not found"))
		return
	}

	if err := ic.schedules.Delete(middlewares.ActorID(c), &s); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory scheduling deleted", gin.H{"scheduling_id": s.ID})
}
