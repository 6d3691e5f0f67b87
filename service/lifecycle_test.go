package service

import (
	"errors"
	"testing"
	"time"

	"paytrack/models"
)

func TestValidateSubmit(t *testing.T) {
	june := models.Period{Year: 2025, Month: time.June}

	if err := ValidateSubmit(1000, june); err != nil {
		t.Fatalf("valid submit rejected: %v", err)
	}
	if err := ValidateSubmit(0, june); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("zero amount: got %v, want ErrAmountRequired", err)
	}
	if err := ValidateSubmit(-5, june); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("negative amount: got %v, want ErrAmountRequired", err)
	}
	if err := ValidateSubmit(1000, models.Period{}); err == nil {
		t.Fatal("zero period must be rejected")
	}
}

func TestValidateApprove(t *testing.T) {
	p := &models.Payment{Status: models.StatusPending, Amount: 1000}

	if err := ValidateApprove(p, 1200); err != nil {
		t.Fatalf("valid approve rejected: %v", err)
	}
	if err := ValidateApprove(p, 0); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("zero amount: got %v, want ErrAmountRequired", err)
	}

	for _, st := range []models.PaymentStatus{models.StatusApproved, models.StatusRejected, models.StatusScheduled} {
		p := &models.Payment{Status: st}
		if err := ValidateApprove(p, 100); !errors.Is(err, ErrBadStatus) {
			t.Fatalf("status %s: got %v, want ErrBadStatus", st, err)
		}
	}
}

func TestValidateReject(t *testing.T) {
	p := &models.Payment{Status: models.StatusPending}

	if err := ValidateReject(p, "duplicate"); err != nil {
		t.Fatalf("valid reject rejected: %v", err)
	}
	if err := ValidateReject(p, ""); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("blank reason: got %v, want ErrReasonRequired", err)
	}
	if err := ValidateReject(p, "   "); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("whitespace reason: got %v, want ErrReasonRequired", err)
	}

	done := &models.Payment{Status: models.StatusApproved}
	if err := ValidateReject(done, "late"); !errors.Is(err, ErrBadStatus) {
		t.Fatalf("approved is terminal: got %v, want ErrBadStatus", err)
	}
}

func TestApproveFieldsOverwriteAmount(t *testing.T) {
	now := time.Now()
	fields := ApproveFields(1200, 7, now)

	if fields["amount"] != int64(1200) {
		t.Fatalf("amount = %v, want reviewer-entered 1200", fields["amount"])
	}
	if fields["status"] != models.StatusApproved {
		t.Fatalf("status = %v, want approved", fields["status"])
	}
	if fields["reviewed_by"] != uint(7) {
		t.Fatalf("reviewed_by = %v, want 7", fields["reviewed_by"])
	}
	if fields["reviewed_at"] != now {
		t.Fatalf("reviewed_at = %v, want %v", fields["reviewed_at"], now)
	}
}

func TestRejectFieldsTrimReason(t *testing.T) {
	fields := RejectFields("  duplicate  ", 3, time.Now())
	if fields["notes"] != "duplicate" {
		t.Fatalf("notes = %q, want trimmed reason", fields["notes"])
	}
	if fields["status"] != models.StatusRejected {
		t.Fatalf("status = %v, want rejected", fields["status"])
	}
}

func TestPromoteDue(t *testing.T) {
	june := models.Period{Year: 2025, Month: time.June}
	july := june.Next(1)

	mk := func(id string, status models.PaymentStatus, p models.Period) models.Payment {
		pm := models.Payment{ID: id, Status: status, Amount: 100}
		pm.SetPeriod(p)
		return pm
	}

	payments := []models.Payment{
		mk("a", models.StatusScheduled, june), // due
		mk("b", models.StatusScheduled, july), // future, stays scheduled
		mk("c", models.StatusPending, june),   // already pending
		mk("d", models.StatusApproved, june),  // terminal
		mk("e", models.StatusScheduled, june), // due
	}

	got := PromoteDue(payments, june)
	want := []string{"a", "e"}
	if len(got) != len(want) {
		t.Fatalf("PromoteDue = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PromoteDue = %v, want %v", got, want)
		}
	}

	// promotion decides IDs only; nothing else may have been touched
	for i := range payments {
		if payments[i].Amount != 100 {
			t.Fatalf("payment %s amount changed", payments[i].ID)
		}
	}
}
