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

// PersonnelController covers personnel records plus the registries they
// hang off: units/departments, designations and form signatories.
type PersonnelController struct {
	DB           *gorm.DB
	personnel    *audit.Repository[models.Personnel]
	units        *audit.Repository[models.UnitOrDepartment]
	designations *audit.Repository[models.Designation]
	signatories  *audit.Repository[models.Signatory]
}

func NewPersonnelController(db *gorm.DB, rec *audit.Recorder) *PersonnelController {
	return &PersonnelController{
		DB:           db,
		personnel:    audit.NewRepository[models.Personnel](db, rec),
		units:        audit.NewRepository[models.UnitOrDepartment](db, rec),
		designations: audit.NewRepository[models.Designation](db, rec),
		signatories:  audit.NewRepository[models.Signatory](db, rec),
	}
}

// Personnel

type personnelInput struct {
	FullName           *string `json:"full_name"`
	Position           *string `json:"position"`
	UnitOrDepartmentID *uint   `json:"unit_or_department_id"`
	Status             *string `json:"status"`
}

func (pc *PersonnelController) GetAllPersonnel(c *gin.Context) {
	q := pc.DB.Preload("UnitOrDepartment")
	if unit := c.Query("unit_or_department_id"); unit != "" {
		q = q.Where("unit_or_department_id = ?", unit)
	}

	var personnel []models.Personnel
	if err := q.Find(&personnel).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of personnel", personnel)
}

func (pc *PersonnelController) CreatePersonnel(c *gin.Context) {
	var in personnelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.FullName == nil || in.UnitOrDepartmentID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("full_name and unit_or_department_id are required"))
		return
	}

	p := models.Personnel{
		FullName:           *in.FullName,
		UnitOrDepartmentID: *in.UnitOrDepartmentID,
		Status:             "active",
	}
	if in.Position != nil {
		p.Position = *in.Position
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if err := pc.personnel.Create(middlewares.ActorID(c), &p); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Personnel created", p)
}

func (pc *PersonnelController) UpdatePersonnel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("personnel_id"))

	var p models.Personnel
	if err := pc.DB.First(&p, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("personnel not found"))
		return
	}

	var in personnelInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.FullName != nil {
		changes["full_name"] = *in.FullName
	}
	if in.Position != nil {
		changes["position"] = *in.Position
	}
	if in.UnitOrDepartmentID != nil {
		changes["unit_or_department_id"] = *in.UnitOrDepartmentID
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}

	if err := pc.personnel.Update(middlewares.ActorID(c), &p, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Personnel updated", p)
}

func (pc *PersonnelController) DeletePersonnel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("personnel_id"))

	var p models.Personnel
	if err := pc.DB.First(&p, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("personnel not found"))
		return
	}

	if err := pc.personnel.Delete(middlewares.ActorID(c), &p); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Personnel deleted", gin.H{"personnel_id": p.ID})
}

// Units / departments

type unitInput struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

func (pc *PersonnelController) GetAllUnits(c *gin.Context) {
	var units []models.UnitOrDepartment
	if err := pc.DB.Find(&units).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of units and departments", units)
}

func (pc *PersonnelController) CreateUnit(c *gin.Context) {
	var in unitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name == nil || in.Code == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and code are required"))
		return
	}

	unit := models.UnitOrDepartment{Name: *in.Name, Code: *in.Code}
	if in.Description != nil {
		unit.Description = *in.Description
	}
	if err := pc.units.Create(middlewares.ActorID(c), &unit); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Unit/department created", unit)
}

func (pc *PersonnelController) UpdateUnit(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("unit_id"))

	var unit models.UnitOrDepartment
	if err := pc.DB.First(&unit, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("unit/department not found"))
		return
	}

	var in unitInput
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
	if in.Description != nil {
		changes["description"] = *in.Description
	}

	if err := pc.units.Update(middlewares.ActorID(c), &unit, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unit/department updated", unit)
}

func (pc *PersonnelController) DeleteUnit(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("unit_id"))

	var unit models.UnitOrDepartment
	if err := pc.DB.First(&unit, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("unit/department not found"))
		return
	}

	if err := pc.units.Delete(middlewares.ActorID(c), &unit); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unit/department deleted", gin.H{"unit_id": unit.ID})
}

// Designations

type designationInput struct {
	Name *string `json:"name"`
}

func (pc *PersonnelController) GetAllDesignations(c *gin.Context) {
	var designations []models.Designation
	if err := pc.DB.Find(&designations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of designations", designations)
}

func (pc *PersonnelController) CreateDesignation(c *gin.Context) {
	var in designationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	d := models.Designation{Name: *in.Name}
	if err := pc.designations.Create(middlewares.ActorID(c), &d); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Designation created", d)
}

func (pc *PersonnelController) UpdateDesignation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("designation_id"))

	var d models.Designation
	if err := pc.DB.First(&d, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("designation not found"))
		return
	}

	var in designationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}

	if err := pc.designations.Update(middlewares.ActorID(c), &d, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Designation updated", d)
}

func (pc *PersonnelController) DeleteDesignation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("designation_id"))

	var d models.Designation
	if err := pc.DB.First(&d, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("designation not found"))
		return
	}

	if err := pc.designations.Delete(middlewares.ActorID(c), &d); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Designation deleted", gin.H{"designation_id": d.ID})
}

// Signatories

type signatoryInput struct {
	PersonnelID   *uint   `json:"personnel_id"`
	DesignationID *uint   `json:"designation_id"`
	FundCluster   *string `json:"fund_cluster"`
}

func (pc *PersonnelController) GetAllSignatories(c *gin.Context) {
	var signatories []models.Signatory
	if err := pc.DB.Preload("Personnel").Preload("Designation").Find(&signatories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of signatories", signatories)
}

func (pc *PersonnelController) CreateSignatory(c *gin.Context) {
	var in signatoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.PersonnelID == nil || in.DesignationID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("personnel_id and designation_id are required"))
		return
	}

	s := models.Signatory{PersonnelID: *in.PersonnelID, DesignationID: *in.DesignationID}
	if in.FundCluster != nil {
		s.FundCluster = *in.FundCluster
	}
	if err := pc.signatories.Create(middlewares.ActorID(c), &s); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Signatory created", s)
}

func (pc *PersonnelController) UpdateSignatory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("signatory_id"))

	var s models.Signatory
	if err := pc.DB.First(&s, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("signatory not found"))
		return
	}

	var in signatoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.PersonnelID != nil {
		changes["personnel_id"] = *in.PersonnelID
	}
	if in.DesignationID != nil {
		changes["designation_id"] = *in.DesignationID
	}
	if in.FundCluster != nil {
		changes["fund_cluster"] = *in.FundCluster
	}

	if err := pc.signatories.Update(middlewares.ActorID(c), &s, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Signatory updated", s)
}

func (pc *PersonnelController) DeleteSignatory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("signatory_id"))

	var s models.Signatory
	if err := pc.DB.First(&s, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("signatory not found"))
		return
	}

	if err := pc.signatories.Delete(middlewares.ActorID(c), &s); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Signatory deleted", gin.H{"signatory_id": s.ID})
}
