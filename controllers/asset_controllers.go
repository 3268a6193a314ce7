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
	"github.com/rfdelacruz/property-app/utils"
)

// AssetController covers the asset catalog: categories, asset models and
// the physical equipment copies of inventory items.
type AssetController struct {
	DB         *gorm.DB
	categories *audit.Repository[models.Category]
	assets     *audit.Repository[models.AssetModel]
	copies     *audit.Repository[models.EquipmentCopy]
}

func NewAssetController(db *gorm.DB, rec *audit.Recorder) *AssetController {
	return &AssetController{
		DB:         db,
		categories: audit.NewRepository[models.Category](db, rec),
		assets:     audit.NewRepository[models.AssetModel](db, rec),
		copies:     audit.NewRepository[models.EquipmentCopy](db, rec),
	}
}

// Categories

type categoryInput struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

func (ac *AssetController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := ac.DB.Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

func (ac *AssetController) CreateCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	category := models.Category{Name: *in.Name, Type: "equipment"}
	if in.Type != nil {
		category.Type = *in.Type
	}
	if err := ac.categories.Create(middlewares.ActorID(c), &category); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

func (ac *AssetController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("category_id"))

	var category models.Category
	if err := ac.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Type != nil {
		changes["type"] = *in.Type
	}

	if err := ac.categories.Update(middlewares.ActorID(c), &category, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

func (ac *AssetController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("category_id"))

	var category models.Category
	if err := ac.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	if err := ac.categories.Delete(middlewares.ActorID(c), &category); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": category.ID})
}

// Asset models

type assetModelInput struct {
	CategoryID    *uint   `json:"category_id"`
	Brand         *string `json:"brand"`
	Model         *string `json:"model"`
	Specification *string `json:"specification"`
}

func (ac *AssetController) GetAllAssetModels(c *gin.Context) {
	q := ac.DB.Preload("Category")
	if category := c.Query("category_id"); category != "" {
		q = q.Where("category_id = ?", category)
	}

	var assets []models.AssetModel
	if err := q.Find(&assets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of asset models", assets)
}

func (ac *AssetController) CreateAssetModel(c *gin.Context) {
	var in assetModelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.CategoryID == nil || in.Brand == nil || in.Model == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category_id, brand and model are required"))
		return
	}

	asset := models.AssetModel{CategoryID: *in.CategoryID, Brand: *in.Brand, Model: *in.Model}
	if in.Specification != nil {
		asset.Specification = *in.Specification
	}
	if err := ac.assets.Create(middlewares.ActorID(c), &asset); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Asset model created", asset)
}

func (ac *AssetController) UpdateAssetModel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("asset_model_id"))

	var asset models.AssetModel
	if err := ac.DB.First(&asset, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("asset model not found"))
		return
	}

	var in assetModelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.CategoryID != nil {
		changes["category_id"] = *in.CategoryID
	}
	if in.Brand != nil {
		changes["brand"] = *in.Brand
	}
	if in.Model != nil {
		changes["model"] = *in.Model
	}
	if in.Specification != nil {
		changes["specification"] = *in.Specification
	}

	if err := ac.assets.Update(middlewares.ActorID(c), &asset, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Asset model updated", asset)
}

func (ac *AssetController) DeleteAssetModel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("asset_model_id"))

	var asset models.AssetModel
	if err := ac.DB.First(&asset, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("asset model not found"))
		return
	}

	if err := ac.assets.Delete(middlewares.ActorID(c), &asset); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Asset model deleted", gin.H{"asset_model_id": asset.ID})
}

// Equipment copies

type equipmentCopyInput struct {
	InventoryListID *uint   `json:"inventory_list_id"`
	CopyNumber      *int    `json:"copy_number"`
	Status          *string `json:"status"`
}

func (ac *AssetController) GetCopiesByItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var copies []models.EquipmentCopy
	if err := ac.DB.Where("inventory_list_id = ?", id).Order("copy_number ASC").Find(&copies).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of equipment copies", copies)
}

func (ac *AssetController) CreateEquipmentCopy(c *gin.Context) {
	var in equipmentCopyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.InventoryListID == nil || in.CopyNumber == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("inventory_list_id and copy_number are required"))
		return
	}

	copyRec := models.EquipmentCopy{
		InventoryListID: *in.InventoryListID,
		CopyNumber:      *in.CopyNumber,
		Status:          "available",
	}
	if in.Status != nil {
		copyRec.Status = *in.Status
	}
	if err := ac.copies.Create(middlewares.ActorID(c), &copyRec); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Equipment copy created", copyRec)
}

func (ac *AssetController) UpdateEquipmentCopy(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("copy_id"))

	var copyRec models.EquipmentCopy
	if err := ac.DB.First(&copyRec, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("equipment copy not found"))
		return
	}

	var in equipmentCopyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.InventoryListID != nil {
		changes["inventory_list_id"] = *in.InventoryListID
	}
	if in.CopyNumber != nil {
		changes["copy_number"] = *in.CopyNumber
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}

	if err := ac.copies.Update(middlewares.ActorID(c), &copyRec, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Equipment copy updated", copyRec)
}

func (ac *AssetController) DeleteEquipmentCopy(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("copy_id"))

	var copyRec models.EquipmentCopy
	if err := ac.DB.First(&copyRec, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("equipment copy not found"))
		return
	}

	if err := ac.copies.Delete(middlewares.ActorID(c), &copyRec); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Equipment copy deleted", gin.H{"copy_id": copyRec.ID})
}
