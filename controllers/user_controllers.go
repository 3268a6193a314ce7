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

type UserController struct {
	DB    *gorm.DB
	users *audit.Repository[models.User]
	roles *audit.Repository[models.Role]
}

func NewUserController(db *gorm.DB, rec *audit.Recorder) *UserController {
	return &UserController{
		DB:    db,
		users: audit.NewRepository[models.User](db, rec),
		roles: audit.NewRepository[models.Role](db, rec),
	}
}

// Users

type userInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	RoleID   *uint   `json:"role_id"`
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Preload("Role").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of users", users)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name == nil || in.Email == nil || in.Password == nil || in.RoleID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, email, password and role_id are required"))
		return
	}

	hashed, err := utils.HashPassword(*in.Password)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     *in.Name,
		Email:    *in.Email,
		Password: hashed,
		RoleID:   *in.RoleID,
	}
	if err := uc.users.Create(middlewares.ActorID(c), &user); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "User created", user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("user_id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Email != nil {
		changes["email"] = *in.Email
	}
	if in.RoleID != nil {
		changes["role_id"] = *in.RoleID
	}
	if in.Password != nil {
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		// The hash is not part of the audit state, so it never lands in a
		// change record.
		if err := uc.DB.Model(&user).Update("password", hashed).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := uc.users.Update(middlewares.ActorID(c), &user, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User updated", user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("user_id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := uc.users.Delete(middlewares.ActorID(c), &user); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User deleted", gin.H{"user_id": user.ID})
}

// Roles

type roleInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (uc *UserController) GetAllRoles(c *gin.Context) {
	var roles []models.Role
	if err := uc.DB.Find(&roles).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of roles", roles)
}

func (uc *UserController) CreateRole(c *gin.Context) {
	var in roleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if in.Name == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	role := models.Role{Name: *in.Name}
	if in.Description != nil {
		role.Description = *in.Description
	}
	if err := uc.roles.Create(middlewares.ActorID(c), &role); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Role created", role)
}

func (uc *UserController) UpdateRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("role_id"))

	var role models.Role
	if err := uc.DB.First(&role, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("role not found"))
		return
	}

	var in roleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	changes := map[string]interface{}{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}

	if err := uc.roles.Update(middlewares.ActorID(c), &role, changes); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Role updated", role)
}

func (uc *UserController) DeleteRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("role_id"))

	var role models.Role
	if err := uc.DB.First(&role, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("role not found"))
		return
	}

	var inUse int64
	if err := uc.DB.Model(&models.User{}).Where("role_id = ?", role.ID).Count(&inUse).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if inUse > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("role is still assigned to users"))
		return
	}

	if err := uc.roles.Delete(middlewares.ActorID(c), &role); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Role deleted", gin.H{"role_id": role.ID})
}
