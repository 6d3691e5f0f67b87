package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"paytrack/config"
	"paytrack/middlewares"
	"paytrack/models"
	"paytrack/service"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// currentSubAdmin loads the caller and refuses terminated subadmins when
// mustBeActive is set. Termination blocks new requests only; reads and
// reviews keep working.
func currentSubAdmin(c *gin.Context, mustBeActive bool) (*models.User, error) {
	uid := middlewares.CurrentUserID(c)
	var me models.User
	if err := config.DB.Where("role = ?", models.RoleSubAdmin).First(&me, uid).Error; err != nil {
		return nil, service.ErrNotFound
	}
	if mustBeActive && me.Terminated {
		return nil, service.ErrTerminated
	}
	return &me, nil
}

func assignedClient(tx *gorm.DB, subAdminID uint, clientID uint) (*models.User, error) {
	var client models.User
	if err := tx.Where("role = ?", models.RoleClient).First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	if client.AssignedSubAdminID == nil || *client.AssignedSubAdminID != subAdminID {
		return nil, service.ErrNotAssigned
	}
	return &client, nil
}

type ScheduleItem struct {
	Month  string `json:"month" binding:"required"` // future period label
	Amount int64  `json:"amount" binding:"required"`
}

type PaymentRequestInput struct {
	ClientID      uint           `json:"client_id" binding:"required"`
	Amount        int64          `json:"amount"`
	Month         string         `json:"month"`
	Description   string         `json:"description"`
	ScreenshotURL string         `json:"screenshot_url"`
	Prepaid       bool           `json:"prepaid"`
	Schedule      []ScheduleItem `json:"schedule"`
}

// SubAdminCreatePaymentRequest creates either one pending claim or, for a
// prepaid plan, one scheduled payment per listed month, inside a single
// transaction so a half-written plan never survives.
func SubAdminCreatePaymentRequest(c *gin.Context) {
	me, err := currentSubAdmin(c, true)
	if err != nil {
		respondRequestErr(c, err)
		return
	}

	var in PaymentRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	now := time.Now()
	var created []models.Payment

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := assignedClient(tx, me.ID, in.ClientID); err != nil {
			return err
		}

		if in.Prepaid {
			if len(in.Schedule) == 0 {
				return service.ErrAmountRequired
			}
			for _, item := range in.Schedule {
				period, perr := models.ParsePeriodLabel(item.Month)
				if perr != nil {
					return perr
				}
				if verr := service.ValidateSubmit(item.Amount, period); verr != nil {
					return verr
				}
				p := models.Payment{
					ID:              uuid.NewString(),
					ClientID:        in.ClientID,
					Amount:          item.Amount,
					Status:          models.StatusScheduled,
					Description:     in.Description,
					ScreenshotURL:   in.ScreenshotURL,
					Tag:             models.TagPrepaid,
					RequestedAt:     &now,
					RequestedBy:     &me.ID,
					RequestedByName: me.Name,
				}
				p.SetPeriod(period)
				if cerr := tx.Create(&p).Error; cerr != nil {
					return cerr
				}
				created = append(created, p)
			}
			return nil
		}

		period := models.CurrentPeriod(now)
		if in.Month != "" {
			var perr error
			period, perr = models.ParsePeriodLabel(in.Month)
			if perr != nil {
				return perr
			}
		}
		if verr := service.ValidateSubmit(in.Amount, period); verr != nil {
			return verr
		}
		p := models.Payment{
			ID:              uuid.NewString(),
			ClientID:        in.ClientID,
			Amount:          in.Amount,
			Status:          models.StatusPending,
			Description:     in.Description,
			ScreenshotURL:   in.ScreenshotURL,
			RequestedAt:     &now,
			RequestedBy:     &me.ID,
			RequestedByName: me.Name,
		}
		p.SetPeriod(period)
		if cerr := tx.Create(&p).Error; cerr != nil {
			return cerr
		}
		created = append(created, p)
		return nil
	})

	if err != nil {
		respondRequestErr(c, err)
		return
	}
	utils.Created(c, "payment request created", NewPaymentViews(created))
}

func respondRequestErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTerminated):
		utils.Error(c, http.StatusForbidden, "terminated subadmins cannot create requests", nil)
	case errors.Is(err, service.ErrNotAssigned):
		utils.Error(c, http.StatusForbidden, "client is not assigned to you", nil)
	case errors.Is(err, service.ErrNotFound):
		utils.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, service.ErrAmountRequired):
		utils.Error(c, http.StatusBadRequest, "every amount must be greater than zero", nil)
	default:
		utils.Error(c, http.StatusBadRequest, "could not create payment request", err)
	}
}

// SubAdminPaymentRequests lists the caller's own requests, newest first.
func SubAdminPaymentRequests(c *gin.Context) {
	uid := middlewares.CurrentUserID(c)

	var payments []models.Payment
	if err := config.DB.Where("requested_by = ?", uid).
		Order("requested_at DESC").Find(&payments).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load requests", err)
		return
	}
	utils.Success(c, "payment requests", NewPaymentViews(payments))
}

func SubAdminClients(c *gin.Context) {
	uid := middlewares.CurrentUserID(c)
	current := models.CurrentPeriod(time.Now())

	var clients []models.User
	if err := config.DB.Where("role = ? AND assigned_sub_admin_id = ?", models.RoleClient, uid).
		Order("name ASC").Find(&clients).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load clients", err)
		return
	}

	overviews, _, err := loadClientOverviews(clients, current)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load payments", err)
		return
	}
	utils.Success(c, "clients", overviews)
}

func SubAdminGetClient(c *gin.Context) {
	uid := middlewares.CurrentUserID(c)
	id := c.Param("id")
	current := models.CurrentPeriod(time.Now())

	var client models.User
	if err := config.DB.
		Where("role = ? AND assigned_sub_admin_id = ?", models.RoleClient, uid).
		First(&client, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "client not found", err)
		return
	}

	overviews, _, err := loadClientOverviews([]models.User{client}, current)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load payments", err)
		return
	}
	utils.Success(c, "client", overviews[0])
}

// SubAdminDashboard mirrors the admin dashboard scoped to the caller:
// own requests grouped by status, assigned clients with summaries, the
// sum collected for the current month and the defaulters among them.
func SubAdminDashboard(c *gin.Context) {
	me, err := currentSubAdmin(c, false)
	if err != nil {
		utils.Error(c, http.StatusNotFound, "subadmin not found", nil)
		return
	}
	current := models.CurrentPeriod(time.Now())

	var requests []models.Payment
	if err := config.DB.Where("requested_by = ?", me.ID).
		Order("requested_at DESC").Find(&requests).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load requests", err)
		return
	}

	var pending, approved, rejected, scheduled int
	var collectedThisMonth int64
	for i := range requests {
		p := &requests[i]
		switch p.Status {
		case models.StatusPending:
			pending++
		case models.StatusApproved:
			approved++
			if p.Period() == current {
				collectedThisMonth += p.Amount
			}
		case models.StatusRejected:
			rejected++
		case models.StatusScheduled:
			scheduled++
		}
	}

	var clients []models.User
	if err := config.DB.Where("role = ? AND assigned_sub_admin_id = ?", models.RoleClient, me.ID).
		Order("name ASC").Find(&clients).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load clients", err)
		return
	}

	overviews, _, err := loadClientOverviews(clients, current)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load payments", err)
		return
	}

	var defaulters []string
	for _, ov := range overviews {
		if !ov.Summary.CurrentMonthSettled {
			defaulters = append(defaulters, ov.Client.Name)
		}
	}
	sort.Strings(defaulters)

	utils.Success(c, "dashboard", gin.H{
		"current_month":        current.Label(),
		"terminated":           me.Terminated,
		"requests":             NewPaymentViews(requests),
		"pending_count":        pending,
		"approved_count":       approved,
		"rejected_count":       rejected,
		"scheduled_count":      scheduled,
		"collected_this_month": collectedThisMonth,
		"clients":              overviews,
		"defaulters":           defaulters,
	})
}
