package controllers

import (
	"net/http"

	"paytrack/config"
	"paytrack/models"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SetupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Setup creates the very first admin account. Self-disabling: once any
// admin user exists this endpoint returns 403 forever.
func Setup(c *gin.Context) {
	var in SetupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "missing required fields", err)
		return
	}

	exists, err := config.AdminExists()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "setup check failed", err)
		return
	}
	if exists {
		utils.Error(c, http.StatusForbidden, "admin account already exists, setup disabled", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	admin := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create admin", err)
		return
	}

	utils.Created(c, "admin created", gin.H{"user_id": admin.ID})
}
