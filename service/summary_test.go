package service

import (
	"testing"
	"time"

	"paytrack/models"
)

func pay(status models.PaymentStatus, amount int64, p models.Period) models.Payment {
	pm := models.Payment{Amount: amount, Status: status}
	pm.SetPeriod(p)
	return pm
}

var june = models.Period{Year: 2025, Month: time.June}

func TestTotalApprovedIgnoresOtherStatuses(t *testing.T) {
	payments := []models.Payment{
		pay(models.StatusApproved, 6000, june),
		pay(models.StatusPending, 5000, june),
		pay(models.StatusRejected, 7000, june),
		pay(models.StatusScheduled, 800, june),
		pay(models.StatusApproved, 1500, june.Next(1)),
	}
	if got := TotalApproved(payments); got != 7500 {
		t.Fatalf("TotalApproved = %d, want 7500", got)
	}
}

func TestEffectiveTargetPrefersFixed(t *testing.T) {
	tests := []struct {
		name          string
		fixed, target int64
		want          int64
	}{
		{"fixed wins", 25000, 50000, 25000},
		{"fixed zero falls back", 0, 50000, 50000},
		{"fixed negative falls back", -1, 50000, 50000},
		{"both zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveTarget(tt.fixed, tt.target); got != tt.want {
				t.Fatalf("EffectiveTarget(%d, %d) = %d, want %d", tt.fixed, tt.target, got, tt.want)
			}
		})
	}
}

func TestProgressPercentBounds(t *testing.T) {
	tests := []struct {
		name          string
		approved      int64
		fixed, target int64
		want          float64
	}{
		{"no target", 5000, 0, 0, 0},
		{"normal", 6000, 10000, 0, 60},
		{"overshoot capped", 250000, 10000, 0, 100},
		{"legacy target", 5000, 0, 20000, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := []models.Payment{pay(models.StatusApproved, tt.approved, june)}
			got := ProgressPercent(payments, tt.fixed, tt.target)
			if got != tt.want {
				t.Fatalf("ProgressPercent = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("ProgressPercent = %v out of [0,100]", got)
			}
		})
	}
}

func TestRemainingNotClamped(t *testing.T) {
	payments := []models.Payment{pay(models.StatusApproved, 12000, june)}
	if got := Remaining(payments, 10000, 0); got != -2000 {
		t.Fatalf("Remaining = %d, want -2000", got)
	}
}

func TestIsDefaulter(t *testing.T) {
	if !IsDefaulter(nil, june) {
		t.Fatal("client with zero payments must be a defaulter")
	}

	settled := []models.Payment{pay(models.StatusApproved, 100, june)}
	if IsDefaulter(settled, june) {
		t.Fatal("approved payment in the current period must clear the defaulter flag")
	}

	wrongMonth := []models.Payment{pay(models.StatusApproved, 100, june.Next(1))}
	if !IsDefaulter(wrongMonth, june) {
		t.Fatal("approved payment for another period must not count")
	}

	pendingOnly := []models.Payment{pay(models.StatusPending, 100, june)}
	if !IsDefaulter(pendingOnly, june) {
		t.Fatal("pending payment must not settle the month")
	}
}

func TestPendingMonthsDistinct(t *testing.T) {
	payments := []models.Payment{
		pay(models.StatusPending, 100, june),
		pay(models.StatusPending, 200, june),
		pay(models.StatusPending, 300, june.Next(1)),
		pay(models.StatusApproved, 400, june.Next(2)),
	}
	got := PendingMonths(payments)
	want := []string{"June 2025", "July 2025"}
	if len(got) != len(want) {
		t.Fatalf("PendingMonths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PendingMonths = %v, want %v", got, want)
		}
	}
}

func TestCountUploadsOn(t *testing.T) {
	day := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	early := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)
	yesterday := day.AddDate(0, 0, -1)

	mk := func(ts *time.Time) models.Payment {
		p := pay(models.StatusPending, 100, june)
		p.UploadedAt = ts
		return p
	}

	payments := []models.Payment{
		mk(&day),
		mk(&early),
		mk(&yesterday),
		mk(nil), // subadmin request, no upload timestamp
	}
	if got := CountUploadsOn(payments, day); got != 2 {
		t.Fatalf("CountUploadsOn = %d, want 2", got)
	}
}

// Full scenario from the product: fixed target 10000, one approval at
// 6000, then a rejected claim that must not move the numbers.
func TestSummarizeScenario(t *testing.T) {
	a := pay(models.StatusPending, 6000, june)
	if err := ValidateApprove(&a, 6000); err != nil {
		t.Fatalf("approve validation failed: %v", err)
	}
	a.Status = models.StatusApproved

	b := pay(models.StatusPending, 5000, june)
	if err := ValidateReject(&b, "duplicate"); err != nil {
		t.Fatalf("reject validation failed: %v", err)
	}
	b.Status = models.StatusRejected
	b.Notes = "duplicate"

	s := Summarize([]models.Payment{a, b}, 10000, 0, june)
	if s.TotalApproved != 6000 {
		t.Fatalf("TotalApproved = %d, want 6000", s.TotalApproved)
	}
	if s.Remaining != 4000 {
		t.Fatalf("Remaining = %d, want 4000", s.Remaining)
	}
	if s.ProgressPercent != 60 {
		t.Fatalf("ProgressPercent = %v, want 60", s.ProgressPercent)
	}
	if !s.CurrentMonthSettled {
		t.Fatal("approved current-month payment must settle the month")
	}
	if s.ApprovedCount != 1 || s.RejectedCount != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", s.ApprovedCount, s.RejectedCount)
	}
	if b.Notes != "duplicate" {
		t.Fatalf("rejection notes = %q, want duplicate", b.Notes)
	}
}
