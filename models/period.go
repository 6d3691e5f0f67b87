package models

import (
	"fmt"
	"strings"
	"time"
)

// Period is a billing month. It is stored structured (year + month ints)
// and rendered as a label like "March 2025" only at the API boundary, so
// period matching is integer equality rather than string comparison.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: now.Month()}
}

// Label formats the period the way clients see it: full month name + year.
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// Next returns the period n months after p, rolling over years.
func (p Period) Next(n int) Period {
	m := int(p.Month) - 1 + n
	return Period{
		Year:  p.Year + m/12,
		Month: time.Month(m%12 + 1),
	}
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

func (p Period) Valid() bool {
	return p.Year >= 2000 && p.Year <= 2200 && p.Month >= time.January && p.Month <= time.December
}

// ParsePeriodLabel parses "<MonthName> <Year>", e.g. "March 2025". This is
// the only place the legacy string format is understood.
func ParsePeriodLabel(label string) (Period, error) {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid period label %q", label)
	}
	t, err := time.Parse("January 2006", parts[0]+" "+parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period label %q", label)
	}
	p := Period{Year: t.Year(), Month: t.Month()}
	if !p.Valid() {
		return Period{}, fmt.Errorf("period %q out of range", label)
	}
	return p, nil
}
