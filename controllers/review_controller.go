package controllers

import (
	"errors"
	"net/http"
	"time"

	"paytrack/config"
	"paytrack/middlewares"
	"paytrack/models"
	"paytrack/service"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApproveInput struct {
	Amount int64 `json:"amount" binding:"required"`
}

type RejectInput struct {
	Reason string `json:"reason" binding:"required"`
}

// reviewScope loads the payment under a row lock and, for subadmins,
// checks the owning client is assigned to the reviewer.
func reviewScope(tx *gorm.DB, c *gin.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	role, _ := c.Get("role")
	if role == string(models.RoleSubAdmin) {
		reviewerID := middlewares.CurrentUserID(c)
		var client models.User
		if err := tx.First(&client, p.ClientID).Error; err != nil {
			return nil, service.ErrNotFound
		}
		if client.AssignedSubAdminID == nil || *client.AssignedSubAdminID != reviewerID {
			return nil, service.ErrNotAssigned
		}
	}
	return &p, nil
}

// PaymentApprove moves pending -> approved. The reviewer-entered amount
// overwrites the requested one; the update is guarded on status=pending so
// two concurrent reviewers cannot both win.
func PaymentApprove(c *gin.Context) {
	id := c.Param("id")
	reviewerID := middlewares.CurrentUserID(c)

	var in ApproveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "amount is required", err)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		p, err := reviewScope(tx, c, id)
		if err != nil {
			return err
		}
		if err := service.ValidateApprove(p, in.Amount); err != nil {
			return err
		}

		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", p.ID, models.StatusPending).
			Updates(service.ApproveFields(in.Amount, reviewerID, time.Now()))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return service.ErrAlreadyProcessed
		}
		return nil
	})

	respondReview(c, err, "payment approved")
}

// PaymentReject moves pending -> rejected; a blank reason is refused
// before anything is written.
func PaymentReject(c *gin.Context) {
	id := c.Param("id")
	reviewerID := middlewares.CurrentUserID(c)

	var in RejectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "rejection reason is required", err)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		p, err := reviewScope(tx, c, id)
		if err != nil {
			return err
		}
		if err := service.ValidateReject(p, in.Reason); err != nil {
			return err
		}

		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", p.ID, models.StatusPending).
			Updates(service.RejectFields(in.Reason, reviewerID, time.Now()))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return service.ErrAlreadyProcessed
		}
		return nil
	})

	respondReview(c, err, "payment rejected")
}

func respondReview(c *gin.Context, err error, okMsg string) {
	switch {
	case err == nil:
		utils.Success(c, okMsg, nil)
	case errors.Is(err, service.ErrNotFound):
		utils.Error(c, http.StatusNotFound, "payment not found", nil)
	case errors.Is(err, service.ErrNotAssigned):
		utils.Error(c, http.StatusForbidden, "client is not assigned to you", nil)
	case errors.Is(err, service.ErrBadStatus):
		utils.Error(c, http.StatusBadRequest, "only pending payments can be reviewed", nil)
	case errors.Is(err, service.ErrAmountRequired):
		utils.Error(c, http.StatusBadRequest, "amount must be greater than zero", nil)
	case errors.Is(err, service.ErrReasonRequired):
		utils.Error(c, http.StatusBadRequest, "rejection reason must not be blank", nil)
	case errors.Is(err, service.ErrAlreadyProcessed):
		utils.Error(c, http.StatusConflict, "payment was already processed", nil)
	default:
		utils.Error(c, http.StatusInternalServerError, "review failed", err)
	}
}
