package models

import (
	"testing"
	"time"
)

func TestPeriodLabel(t *testing.T) {
	p := Period{Year: 2025, Month: time.March}
	if got := p.Label(); got != "March 2025" {
		t.Fatalf("Label = %q, want %q", got, "March 2025")
	}
}

func TestParsePeriodLabelRoundTrip(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		p := Period{Year: 2025, Month: m}
		got, err := ParsePeriodLabel(p.Label())
		if err != nil {
			t.Fatalf("ParsePeriodLabel(%q): %v", p.Label(), err)
		}
		if got != p {
			t.Fatalf("round trip: got %+v, want %+v", got, p)
		}
	}
}

func TestParsePeriodLabelRejectsGarbage(t *testing.T) {
	for _, label := range []string{"", "March", "Marchtember 2025", "March 25", "2025 March", "March 2025 extra"} {
		if _, err := ParsePeriodLabel(label); err == nil {
			t.Fatalf("ParsePeriodLabel(%q) should fail", label)
		}
	}
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	p := CurrentPeriod(now)
	if p.Year != 2025 || p.Month != time.June {
		t.Fatalf("CurrentPeriod = %+v", p)
	}
	if p.Label() != "June 2025" {
		t.Fatalf("Label = %q, want June 2025", p.Label())
	}
}

func TestPeriodNextRollsOver(t *testing.T) {
	tests := []struct {
		start Period
		n     int
		want  Period
	}{
		{Period{2025, time.June}, 1, Period{2025, time.July}},
		{Period{2025, time.November}, 2, Period{2026, time.January}},
		{Period{2025, time.December}, 1, Period{2026, time.January}},
		{Period{2025, time.January}, 12, Period{2026, time.January}},
		{Period{2025, time.June}, 0, Period{2025, time.June}},
	}
	for _, tt := range tests {
		if got := tt.start.Next(tt.n); got != tt.want {
			t.Fatalf("%v.Next(%d) = %v, want %v", tt.start, tt.n, got, tt.want)
		}
	}
}

func TestPaymentMonthLabel(t *testing.T) {
	p := Payment{}
	if p.Month() != "" {
		t.Fatalf("zero payment month = %q, want empty", p.Month())
	}
	p.SetPeriod(Period{Year: 2025, Month: time.June})
	if p.Month() != "June 2025" {
		t.Fatalf("month = %q, want June 2025", p.Month())
	}
	if p.PeriodYear != 2025 || p.PeriodMonth != 6 {
		t.Fatalf("stored period = %d/%d", p.PeriodYear, p.PeriodMonth)
	}
}
