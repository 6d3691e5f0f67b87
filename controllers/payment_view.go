package controllers

import (
	"paytrack/models"
	"paytrack/utils"
)

// PaymentView is the wire shape of a payment: the stored structured period
// goes out as the familiar "March 2025" label, and Cloudinary screenshots
// get a thumbnail variant for list views.
type PaymentView struct {
	models.Payment
	Month           string `json:"month,omitempty"`
	ScreenshotThumb string `json:"screenshot_thumb,omitempty"`
}

func NewPaymentView(p models.Payment) PaymentView {
	return PaymentView{
		Payment:         p,
		Month:           p.Month(),
		ScreenshotThumb: utils.ScreenshotThumb(p.ScreenshotURL),
	}
}

func NewPaymentViews(ps []models.Payment) []PaymentView {
	out := make([]PaymentView, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewPaymentView(p))
	}
	return out
}
