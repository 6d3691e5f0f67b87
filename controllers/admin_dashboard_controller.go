package controllers

import (
	"net/http"
	"sort"
	"time"

	"paytrack/config"
	"paytrack/middlewares"
	"paytrack/models"
	"paytrack/service"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
)

type ClientOverview struct {
	Client   models.User           `json:"client"`
	Payments []PaymentView         `json:"payments"`
	Summary  service.ClientSummary `json:"summary"`
}

// promoteDuePayments flips every scheduled payment for the current period
// to pending in one batched update. Fires as a side effect of loading the
// admin dashboard; there is no background job.
func promoteDuePayments(current models.Period) int64 {
	res := config.DB.Model(&models.Payment{}).
		Where("status = ? AND period_year = ? AND period_month = ?",
			models.StatusScheduled, current.Year, int(current.Month)).
		Update("status", models.StatusPending)
	if res.Error != nil {
		config.Log.Error().Err(res.Error).Msg("scheduled payment promotion failed")
		return 0
	}
	if res.RowsAffected > 0 {
		config.Log.Info().Int64("promoted", res.RowsAffected).
			Str("period", current.Label()).Msg("scheduled payments promoted to pending")
		middlewares.ObservePromotions(res.RowsAffected)
	}
	return res.RowsAffected
}

// loadClientOverviews fetches clients in scope plus all of their payments
// and merges them in memory, newest payment first.
func loadClientOverviews(clients []models.User, current models.Period) ([]ClientOverview, []models.Payment, error) {
	ids := make([]uint, 0, len(clients))
	for _, cl := range clients {
		ids = append(ids, cl.ID)
	}

	var payments []models.Payment
	if len(ids) > 0 {
		if err := config.DB.Where("client_id IN ?", ids).
			Order("created_at DESC").Find(&payments).Error; err != nil {
			return nil, nil, err
		}
	}

	byClient := make(map[uint][]models.Payment, len(clients))
	for _, p := range payments {
		byClient[p.ClientID] = append(byClient[p.ClientID], p)
	}

	overviews := make([]ClientOverview, 0, len(clients))
	for _, cl := range clients {
		ps := byClient[cl.ID]
		overviews = append(overviews, ClientOverview{
			Client:   cl,
			Payments: NewPaymentViews(ps),
			Summary:  service.Summarize(ps, cl.FixedAmount, cl.TargetAmount, current),
		})
	}
	return overviews, payments, nil
}

// AdminDashboard is the everything view: it runs the scheduled-payment
// promotion, then returns all clients with their payments, per-client
// summaries, global status counts and the defaulter list.
func AdminDashboard(c *gin.Context) {
	current := models.CurrentPeriod(time.Now())
	promoted := promoteDuePayments(current)

	var clients []models.User
	if err := config.DB.Where("role = ?", models.RoleClient).Order("name ASC").Find(&clients).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load clients", err)
		return
	}

	overviews, allPayments, err := loadClientOverviews(clients, current)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not load payments", err)
		return
	}

	var totalApproved int64
	var pending, approved, rejected, scheduled int
	for i := range allPayments {
		switch allPayments[i].Status {
		case models.StatusPending:
			pending++
		case models.StatusApproved:
			approved++
			totalApproved += allPayments[i].Amount
		case models.StatusRejected:
			rejected++
		case models.StatusScheduled:
			scheduled++
		}
	}

	type DefaulterRow struct {
		ClientID      uint     `json:"client_id"`
		Name          string   `json:"name"`
		Email         string   `json:"email"`
		PendingMonths []string `json:"pending_months"`
	}
	var defaulters []DefaulterRow
	for _, ov := range overviews {
		if !ov.Summary.CurrentMonthSettled {
			defaulters = append(defaulters, DefaulterRow{
				ClientID:      ov.Client.ID,
				Name:          ov.Client.Name,
				Email:         ov.Client.Email,
				PendingMonths: ov.Summary.PendingMonths,
			})
		}
	}
	sort.Slice(defaulters, func(i, j int) bool { return defaulters[i].Name < defaulters[j].Name })

	utils.Success(c, "dashboard", gin.H{
		"current_month":   current.Label(),
		"promoted":        promoted,
		"clients":         overviews,
		"total_approved":  totalApproved,
		"pending_count":   pending,
		"approved_count":  approved,
		"rejected_count":  rejected,
		"scheduled_count": scheduled,
		"defaulters":      defaulters,
	})
}

func AdminListClients(c *gin.Context) {
	current := models.CurrentPeriod(time.Now())

	var clients []models.User
	if err := config.DB.Where("role = ?", models.RoleClient).Order("name ASC").Find(&clients).Error; err != nil {
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

func AdminGetClient(c *gin.Context) {
	id := c.Param("id")
	current := models.CurrentPeriod(time.Now())

	var client models.User
	if err := config.DB.Where("role = ?", models.RoleClient).First(&client, id).Error; err != nil {
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
