package controllers

import (
	"errors"
	"net/http"

	"paytrack/config"
	"paytrack/models"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type CreateClientInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	TargetAmount int64  `json:"target_amount"`
	FixedAmount  int64  `json:"fixed_amount"`
}

func AdminCreateClient(c *gin.Context) {
	var in CreateClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "missing required fields", err)
		return
	}
	if in.TargetAmount < 0 || in.FixedAmount < 0 {
		utils.Error(c, http.StatusBadRequest, "amounts must not be negative", nil)
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	client := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleClient,
		TargetAmount: in.TargetAmount,
		FixedAmount:  in.FixedAmount,
		// kept so the admin can hand the credentials to the client later
		InitialPassword: in.Password,
		IsActive:        true,
	}
	if err := config.DB.Create(&client).Error; err != nil {
		if isDuplicateKey(err) {
			utils.Error(c, http.StatusConflict, "email already in use", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "could not create client", err)
		return
	}

	utils.Created(c, "client created", gin.H{"user_id": client.ID})
}

type CreateSubAdminInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func AdminCreateSubAdmin(c *gin.Context) {
	var in CreateSubAdminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "missing required fields", err)
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	sub := models.User{
		Name:            in.Name,
		Email:           in.Email,
		PasswordHash:    string(hash),
		Role:            models.RoleSubAdmin,
		InitialPassword: in.Password,
		IsActive:        true,
	}
	if err := config.DB.Create(&sub).Error; err != nil {
		if isDuplicateKey(err) {
			utils.Error(c, http.StatusConflict, "email already in use", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "could not create subadmin", err)
		return
	}

	utils.Created(c, "subadmin created", gin.H{"user_id": sub.ID})
}

func AdminListSubAdmins(c *gin.Context) {
	var subs []models.User
	if err := config.DB.Where("role = ?", models.RoleSubAdmin).Order("name ASC").Find(&subs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load subadmins", err)
		return
	}
	utils.Success(c, "subadmins", subs)
}

// AdminDeleteClient removes the client, every payment carrying its
// clientId and any assignment pointing at it, in one transaction so a
// partial failure cannot strand orphan rows.
func AdminDeleteClient(c *gin.Context) {
	id := c.Param("id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var client models.User
		if err := tx.Where("role = ?", models.RoleClient).First(&client, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFoundUser
			}
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("assigned_sub_admin_id = ?", client.ID).
			Update("assigned_sub_admin_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})

	switch {
	case err == nil:
		utils.Success(c, "client deleted", nil)
	case errors.Is(err, errNotFoundUser):
		utils.Error(c, http.StatusNotFound, "client not found", nil)
	default:
		utils.Error(c, http.StatusInternalServerError, "could not delete client", err)
	}
}

// AdminDeleteSubAdmin unassigns (never deletes) the subadmin's clients,
// then removes the subadmin itself.
func AdminDeleteSubAdmin(c *gin.Context) {
	id := c.Param("id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var sub models.User
		if err := tx.Where("role = ?", models.RoleSubAdmin).First(&sub, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFoundUser
			}
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("assigned_sub_admin_id = ?", sub.ID).
			Update("assigned_sub_admin_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&sub).Error
	})

	switch {
	case err == nil:
		utils.Success(c, "subadmin deleted", nil)
	case errors.Is(err, errNotFoundUser):
		utils.Error(c, http.StatusNotFound, "subadmin not found", nil)
	default:
		utils.Error(c, http.StatusInternalServerError, "could not delete subadmin", err)
	}
}

var errNotFoundUser = errors.New("USER_NOT_FOUND")

type TerminateInput struct {
	Terminated *bool `json:"terminated" binding:"required"`
}

// AdminTerminateSubAdmin toggles the terminated flag. A terminated
// subadmin keeps read access but may not create new payment requests.
func AdminTerminateSubAdmin(c *gin.Context) {
	id := c.Param("id")

	var in TerminateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var sub models.User
	if err := config.DB.Where("role = ?", models.RoleSubAdmin).First(&sub, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "subadmin not found", err)
		return
	}

	if err := config.DB.Model(&sub).Update("terminated", *in.Terminated).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update subadmin", err)
		return
	}

	utils.Success(c, "subadmin updated", gin.H{"terminated": *in.Terminated})
}

type AssignClientInput struct {
	SubAdminID *uint `json:"sub_admin_id"` // null unassigns
}

func AdminAssignClient(c *gin.Context) {
	id := c.Param("id")

	var in AssignClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var client models.User
	if err := config.DB.Where("role = ?", models.RoleClient).First(&client, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "client not found", err)
		return
	}

	if in.SubAdminID != nil {
		var sub models.User
		if err := config.DB.Where("role = ?", models.RoleSubAdmin).First(&sub, *in.SubAdminID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "subadmin not found", err)
			return
		}
	}

	if err := config.DB.Model(&client).Update("assigned_sub_admin_id", in.SubAdminID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not assign client", err)
		return
	}

	utils.Success(c, "client assignment updated", nil)
}
