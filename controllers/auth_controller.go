package controllers

import (
	"net/http"
	"time"

	"paytrack/config"
	"paytrack/middlewares"
	"paytrack/models"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates any role; the token carries the role so route
// groups can gate on it.
func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = true", in.Email).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login_at", now)

	token, err := utils.GenerateToken(user.ID, user.Name, string(user.Role), 24*time.Hour)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not issue token", err)
		return
	}

	user.InitialPassword = ""
	utils.Success(c, "login ok", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated principal's profile.
func Me(c *gin.Context) {
	uid := middlewares.CurrentUserID(c)

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found", err)
		return
	}

	user.InitialPassword = ""
	utils.Success(c, "profile", user)
}
