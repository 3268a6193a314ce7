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

type BuildingController struct {
	DB        *gorm.DB
	buildings *audit.Repository[models.Building]
	rooms     *audit.Repository[models.BuildingRoom]
}

func NewBuildingController(db *gorm.DB, rec *audit.Recorder) *BuildingController {
	return &BuildingController{
		DB:        db,
		buildings: audit.NewRepository[models.Building](db, rec),
		rooms:     audit.NewRepository[models.BuildingRoom](db, rec),
	}
}

// Buildings

type buildingInput struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Address *string `json:"address"`
}

func (bc *BuildingController) GetAllBuildings(c *gin.Context) {
	var buildings []models.Building
	if err := bc.DB.Find(&buildings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of buildings", buildings)
}

func (bc *BuildingController) GetBuildingByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("building_id"))

	var building models.Building
	if err := bc.DB.First(&building, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("building not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Building detail", building)
}

func (bc *BuildingController) CreateBuilding(c *gin.Context) {
	var in buildingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name == nil || in.Code == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and code are required"))
		return
	}

	building := models.Building{Name: *in.Name, Code: *in.Code}
	if in.Address != nil {
		building.Address = *in.Address
	}
	if err := bc.buildings.Create(middlewares.ActorID(c), &building); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Building created", building)
}

func (bc *BuildingController) UpdateBuilding(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("building_id"))

	var building models.Building
	if err := bc.DB.First(&building, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("building not found"))
		return
	}

	var in buildingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Code != nil {
		changes["code"] = *in.Code
	}
	if in.Address != nil {
		changes["address"] = *in.Address
	}

	if err := bc.buildings.Update(middlewares.ActorID(c), &building, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Building updated", building)
}

func (bc *BuildingController) DeleteBuilding(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("building_id"))

	var building models.Building
	if err := bc.DB.First(&building, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("building not found"))
		return
	}

	if err := bc.buildings.Delete(middlewares.ActorID(c), &building); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Building deleted", gin.H{"building_id": building.ID})
}

// Rooms

type roomInput struct {
	BuildingID *uint   `json:"building_id"`
	Room       *string `json:"room"`
	Floor      *string `json:"floor"`
}

func (bc *BuildingController) GetRoomsByBuilding(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("building_id"))

	var rooms []models.BuildingRoom
	if err := bc.DB.Where("building_id = ?", id).Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

func (bc *BuildingController) CreateRoom(c *gin.Context) {
	var in roomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.BuildingID == nil || in.Room == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("building_id and room are required"))
		return
	}

	room := models.BuildingRoom{BuildingID: *in.BuildingID, Room: *in.Room}
	if in.Floor != nil {
		room.Floor = *in.Floor
	}
	if err := bc.rooms.Create(middlewares.ActorID(c), &room); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Room created", room)
}

func (bc *BuildingController) UpdateRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var room models.BuildingRoom
	if err := bc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}

	var in roomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.BuildingID != nil {
		changes["building_id"] = *in.BuildingID
	}
	if in.Room != nil {
		changes["room"] = *in.Room
	}
	if in.Floor != nil {
		changes["floor"] = *in.Floor
	}

	if err := bc.rooms.Update(middlewares.ActorID(c), &room, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

func (bc *BuildingController) DeleteRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var room models.BuildingRoom
	if err := bc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("room not found"))
		return
	}

	if err := bc.rooms.Delete(middlewares.ActorID(c), &room); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{"room_id": room.ID})
}
