package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"paytrack/models"
)

// DB-side per-client aggregation for the admin report screen. The pure
// funcs in summary.go serve the dashboards that already hold payments in
// memory; this path pushes the sums into SQL so the report never pulls
// whole collections.

type ClientReportRow struct {
	ClientID       uint    `json:"client_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	TargetAmount   int64   `json:"target_amount"`
	FixedAmount    int64   `json:"fixed_amount"`
	TotalApproved  int64   `json:"total_approved"`
	PendingCount   int64   `json:"pending_count"`
	ApprovedCount  int64   `json:"approved_count"`
	RejectedCount  int64   `json:"rejected_count"`
	ScheduledCount int64   `json:"scheduled_count"`
	Remaining      int64   `json:"remaining"`
	Progress       float64 `json:"progress"`
	Defaulter      bool    `json:"defaulter"`
}

type ClientReportFilter struct {
	Query         string // matches name/email
	SubAdminID    *uint  // only clients assigned to this subadmin
	OnlyDefaulter bool
	Page          int    // 1-based
	PageSize      int    // default 50
	SortBy        string // "name","-name","paid","-paid","remaining","-remaining"
}

type Reporter interface {
	ClientReport(ctx context.Context, f ClientReportFilter, current models.Period) ([]ClientReportRow, int64, error)
}

type reporter struct{ db *gorm.DB }

func NewReporter(db *gorm.DB) Reporter { return &reporter{db: db} }

func (r *reporter) ClientReport(ctx context.Context, f ClientReportFilter, current models.Period) ([]ClientReportRow, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 500 {
		f.PageSize = 50
	}

	q := r.db.WithContext(ctx).
		Table("users").
		Select(`
			users.id AS client_id,
			users.name,
			users.email,
			users.target_amount,
			users.fixed_amount,
			COALESCE(SUM(CASE WHEN payments.status = 'approved' THEN payments.amount ELSE 0 END), 0) AS total_approved,
			COUNT(CASE WHEN payments.status = 'pending' THEN 1 END)   AS pending_count,
			COUNT(CASE WHEN payments.status = 'approved' THEN 1 END)  AS approved_count,
			COUNT(CASE WHEN payments.status = 'rejected' THEN 1 END)  AS rejected_count,
			COUNT(CASE WHEN payments.status = 'scheduled' THEN 1 END) AS scheduled_count,
			(CASE WHEN users.fixed_amount > 0 THEN users.fixed_amount ELSE users.target_amount END)
				- COALESCE(SUM(CASE WHEN payments.status = 'approved' THEN payments.amount ELSE 0 END), 0) AS remaining,
			(COUNT(CASE WHEN payments.status = 'approved'
				AND payments.period_year = ? AND payments.period_month = ? THEN 1 END) = 0) AS defaulter
		`, current.Year, int(current.Month)).
		Joins("LEFT JOIN payments ON payments.client_id = users.id").
		Where("users.role = ?", models.RoleClient).
		Group("users.id, users.name, users.email, users.target_amount, users.fixed_amount")

	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("users.name ILIKE ? OR users.email ILIKE ?", like, like)
	}
	if f.SubAdminID != nil {
		q = q.Where("users.assigned_sub_admin_id = ?", *f.SubAdminID)
	}
	if f.OnlyDefaulter {
		q = q.Having(`COUNT(CASE WHEN payments.status = 'approved'
			AND payments.period_year = ? AND payments.period_month = ? THEN 1 END) = 0`,
			current.Year, int(current.Month))
	}

	var total int64
	countQ := r.db.WithContext(ctx).Table("(?) AS report", q).Select("COUNT(*)")
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.SortBy {
	case "name":
		q = q.Order("users.name ASC")
	case "-name":
		q = q.Order("users.name DESC")
	case "paid":
		q = q.Order("total_approved ASC")
	case "-paid":
		q = q.Order("total_approved DESC")
	case "remaining":
		q = q.Order("remaining ASC")
	case "-remaining":
		q = q.Order("remaining DESC")
	default:
		q = q.Order("users.id DESC")
	}

	offset := (f.Page - 1) * f.PageSize
	var rows []ClientReportRow
	if err := q.Offset(offset).Limit(f.PageSize).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	for i := range rows {
		row := &rows[i]
		goal := row.FixedAmount
		if goal <= 0 {
			goal = row.TargetAmount
		}
		if goal > 0 {
			row.Progress = float64(row.TotalApproved) / float64(goal) * 100
			if row.Progress > 100 {
				row.Progress = 100
			}
		}
	}
	return rows, total, nil
}

// StatementRows loads one client's payments newest-first for the PDF
// statement; capped so a runaway history cannot blow up the export.
func StatementRows(ctx context.Context, db *gorm.DB, clientID uint, limit int) ([]models.Payment, error) {
	if limit <= 0 || limit > 2000 {
		limit = 2000
	}
	var rows []models.Payment
	err := db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load statement rows: %w", err)
	}
	return rows, nil
}
