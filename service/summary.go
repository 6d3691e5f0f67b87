package service

import (
	"time"

	"paytrack/models"
)

// Pure aggregation over a client's payments. Recomputed on every load;
// nothing here caches or mutates.

type ClientSummary struct {
	TotalApproved       int64    `json:"total_approved"`
	EffectiveTarget     int64    `json:"effective_target"`
	Remaining           int64    `json:"remaining"`
	ProgressPercent     float64  `json:"progress_percent"`
	CurrentMonthSettled bool     `json:"current_month_settled"`
	PendingMonths       []string `json:"pending_months"`
	PendingCount        int      `json:"pending_count"`
	ApprovedCount       int      `json:"approved_count"`
	RejectedCount       int      `json:"rejected_count"`
	ScheduledCount      int      `json:"scheduled_count"`
}

func TotalApproved(payments []models.Payment) int64 {
	var sum int64
	for i := range payments {
		if payments[i].Status == models.StatusApproved {
			sum += payments[i].Amount
		}
	}
	return sum
}

// EffectiveTarget prefers the fixed amount over the legacy target whenever
// the fixed amount is set.
func EffectiveTarget(fixed, target int64) int64 {
	if fixed > 0 {
		return fixed
	}
	return target
}

// Remaining may go negative when approvals exceed the goal; not clamped.
func Remaining(payments []models.Payment, fixed, target int64) int64 {
	return EffectiveTarget(fixed, target) - TotalApproved(payments)
}

// ProgressPercent is capped at 100 and is 0 when there is no target.
func ProgressPercent(payments []models.Payment, fixed, target int64) float64 {
	goal := EffectiveTarget(fixed, target)
	if goal <= 0 {
		return 0
	}
	pct := float64(TotalApproved(payments)) / float64(goal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// IsCurrentMonthSettled reports whether any approved payment falls in the
// given period.
func IsCurrentMonthSettled(payments []models.Payment, current models.Period) bool {
	for i := range payments {
		p := &payments[i]
		if p.Status == models.StatusApproved && p.Period() == current {
			return true
		}
	}
	return false
}

// IsDefaulter: no approved payment for the current period.
func IsDefaulter(payments []models.Payment, current models.Period) bool {
	return !IsCurrentMonthSettled(payments, current)
}

// PendingMonths lists the distinct period labels of pending payments, in
// first-seen order.
func PendingMonths(payments []models.Payment) []string {
	seen := make(map[models.Period]bool)
	var out []string
	for i := range payments {
		p := &payments[i]
		if p.Status != models.StatusPending || p.PeriodYear == 0 {
			continue
		}
		per := p.Period()
		if !seen[per] {
			seen[per] = true
			out = append(out, per.Label())
		}
	}
	return out
}

// CountUploadsOn counts client self-submissions on the given calendar day,
// for the daily quota check.
func CountUploadsOn(payments []models.Payment, day time.Time) int {
	y, m, d := day.Date()
	n := 0
	for i := range payments {
		up := payments[i].UploadedAt
		if up == nil {
			continue
		}
		uy, um, ud := up.Date()
		if uy == y && um == m && ud == d {
			n++
		}
	}
	return n
}

// Summarize rolls everything a dashboard card needs into one struct.
func Summarize(payments []models.Payment, fixed, target int64, current models.Period) ClientSummary {
	s := ClientSummary{
		TotalApproved:       TotalApproved(payments),
		EffectiveTarget:     EffectiveTarget(fixed, target),
		ProgressPercent:     ProgressPercent(payments, fixed, target),
		CurrentMonthSettled: IsCurrentMonthSettled(payments, current),
		PendingMonths:       PendingMonths(payments),
	}
	s.Remaining = s.EffectiveTarget - s.TotalApproved
	for i := range payments {
		switch payments[i].Status {
		case models.StatusPending:
			s.PendingCount++
		case models.StatusApproved:
			s.ApprovedCount++
		case models.StatusRejected:
			s.RejectedCount++
		case models.StatusScheduled:
			s.ScheduledCount++
		}
	}
	return s
}
