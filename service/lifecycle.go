package service

import (
	"errors"
	"strings"
	"time"

	"paytrack/models"
)

// Failure modes of payment transitions, mapped to HTTP codes in controllers.
var (
	ErrNotFound         = errors.New("NOT_FOUND")
	ErrBadStatus        = errors.New("BAD_STATUS")
	ErrAlreadyProcessed = errors.New("ALREADY_PROCESSED")
	ErrAmountRequired   = errors.New("AMOUNT_REQUIRED")
	ErrReasonRequired   = errors.New("REASON_REQUIRED")
	ErrQuotaExceeded    = errors.New("QUOTA_EXCEEDED")
	ErrInvalidPeriod    = errors.New("INVALID_PERIOD")
	ErrTerminated       = errors.New("SUBADMIN_TERMINATED")
	ErrNotAssigned      = errors.New("CLIENT_NOT_ASSIGNED")
)

// DailyUploadQuota caps client self-submissions per calendar day. Enforced
// against stored uploaded_at timestamps, not a UI-side count.
const DailyUploadQuota = 5

// ValidateSubmit checks a new claim before any write. Scheduled rows must
// carry a valid future-ish period; both paths need a positive amount.
func ValidateSubmit(amount int64, period models.Period) error {
	if amount <= 0 {
		return ErrAmountRequired
	}
	if !period.Valid() {
		return ErrInvalidPeriod
	}
	return nil
}

// ValidateApprove guards pending -> approved. The reviewer-entered amount
// replaces the requested amount, so it must be positive on its own.
func ValidateApprove(p *models.Payment, amount int64) error {
	if p.Status != models.StatusPending {
		return ErrBadStatus
	}
	if amount <= 0 {
		return ErrAmountRequired
	}
	return nil
}

// ValidateReject guards pending -> rejected. A blank reason never reaches
// the store.
func ValidateReject(p *models.Payment, reason string) error {
	if p.Status != models.StatusPending {
		return ErrBadStatus
	}
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return nil
}

// ApproveFields is the column set written on approval.
func ApproveFields(amount int64, reviewerID uint, now time.Time) map[string]any {
	return map[string]any{
		"status":      models.StatusApproved,
		"amount":      amount,
		"reviewed_at": now,
		"reviewed_by": reviewerID,
	}
}

// RejectFields is the column set written on rejection.
func RejectFields(reason string, reviewerID uint, now time.Time) map[string]any {
	return map[string]any{
		"status":      models.StatusRejected,
		"notes":       strings.TrimSpace(reason),
		"reviewed_at": now,
		"reviewed_by": reviewerID,
	}
}

// PromoteDue returns the IDs of scheduled payments whose period equals the
// given one. Those flip to pending in a single batched update; everything
// else is left untouched. Runs on admin dashboard load, not on a timer.
func PromoteDue(payments []models.Payment, current models.Period) []string {
	var ids []string
	for i := range payments {
		p := &payments[i]
		if p.Status == models.StatusScheduled && p.Period() == current {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
