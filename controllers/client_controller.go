package controllers

import (
	"net/http"
	"time"

	"paytrack/config"
	"paytrack/middlewares"
	"paytrack/models"
	"paytrack/service"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientPayments returns the caller's own payments newest-first plus the
// derived summary the client dashboard shows.
func ClientPayments(c *gin.Context) {
	uid := middlewares.CurrentUserID(c)
	current := models.CurrentPeriod(time.Now())

	var me models.User
	if err := config.DB.First(&me, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found", err)
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("client_id = ?", uid).
		Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load payments", err)
		return
	}

	todayCount := service.CountUploadsOn(payments, time.Now())

	utils.Success(c, "payments", gin.H{
		"payments":       NewPaymentViews(payments),
		"summary":        service.Summarize(payments, me.FixedAmount, me.TargetAmount, current),
		"today_count":    todayCount,
		"quota":          service.DailyUploadQuota,
		"quota_exceeded": todayCount >= service.DailyUploadQuota,
	})
}

type SubmitPaymentInput struct {
	Amount        int64  `json:"amount" binding:"required"`
	Month         string `json:"month"` // "March 2025"; defaults to the current month
	Description   string `json:"description"`
	ScreenshotURL string `json:"screenshot_url"`
}

// ClientSubmitPayment creates a pending claim for the caller. The daily
// quota is enforced here against stored uploaded_at timestamps, not in
// the UI.
func ClientSubmitPayment(c *gin.Context) {
	uid := middlewares.CurrentUserID(c)

	var in SubmitPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	now := time.Now()
	period := models.CurrentPeriod(now)
	if in.Month != "" {
		var err error
		period, err = models.ParsePeriodLabel(in.Month)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "invalid month label", err)
			return
		}
	}

	if err := service.ValidateSubmit(in.Amount, period); err != nil {
		utils.Error(c, http.StatusBadRequest, "amount must be greater than zero", nil)
		return
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var todayCount int64
	if err := config.DB.Model(&models.Payment{}).
		Where("client_id = ? AND uploaded_at >= ? AND uploaded_at < ?",
			uid, dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&todayCount).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "quota check failed", err)
		return
	}
	if todayCount >= service.DailyUploadQuota {
		utils.Error(c, http.StatusTooManyRequests, "daily submission quota exceeded", service.ErrQuotaExceeded)
		return
	}

	p := models.Payment{
		ID:            uuid.NewString(),
		ClientID:      uid,
		Amount:        in.Amount,
		Status:        models.StatusPending,
		Description:   in.Description,
		ScreenshotURL: in.ScreenshotURL,
		UploadedAt:    &now,
	}
	p.SetPeriod(period)

	if err := config.DB.Create(&p).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not submit payment", err)
		return
	}

	utils.Created(c, "payment submitted", NewPaymentView(p))
}
