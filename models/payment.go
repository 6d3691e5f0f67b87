package models

import "time"

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusApproved  PaymentStatus = "approved"
	StatusRejected  PaymentStatus = "rejected"
	StatusScheduled PaymentStatus = "scheduled"
)

const TagPrepaid = "prepaid"

// Payment is a claim that a sum was paid by or for a client. For pending
// and scheduled rows Amount is the requested amount; approval overwrites
// it with the reviewer-entered final amount.
type Payment struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID uint   `gorm:"index;not null" json:"client_id"` // immutable after creation

	Amount int64         `gorm:"not null" json:"amount"`
	Status PaymentStatus `gorm:"size:20;not null;index" json:"status"`

	// Billing period, stored structured. The "March 2025" label is derived.
	PeriodMonth int `gorm:"not null" json:"period_month"`
	PeriodYear  int `gorm:"not null;index" json:"period_year"`

	Description   string `gorm:"size:255" json:"description,omitempty"`
	ScreenshotURL string `gorm:"size:500" json:"screenshot_url,omitempty"`
	Tag           string `gorm:"size:30" json:"tag,omitempty"`

	// Notes carries the rejection reason; required once status is rejected.
	Notes string `gorm:"size:500" json:"notes,omitempty"`

	// Creation path: client self-submission sets UploadedAt, a subadmin
	// request sets RequestedAt/RequestedBy.
	UploadedAt      *time.Time `gorm:"index" json:"uploaded_at,omitempty"`
	RequestedAt     *time.Time `json:"requested_at,omitempty"`
	RequestedBy     *uint      `gorm:"index" json:"requested_by,omitempty"`
	RequestedByName string     `gorm:"size:180" json:"requested_by_name,omitempty"`

	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy *uint      `json:"reviewed_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) Period() Period {
	return Period{Year: p.PeriodYear, Month: time.Month(p.PeriodMonth)}
}

func (p *Payment) SetPeriod(per Period) {
	p.PeriodYear = per.Year
	p.PeriodMonth = int(per.Month)
}

// Month is the display label ("March 2025") payments have always carried.
func (p *Payment) Month() string {
	if p.PeriodYear == 0 {
		return ""
	}
	return p.Period().Label()
}
