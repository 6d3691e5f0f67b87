package controllers

import (
	"math/rand"
	"net/http"

	"paytrack/utils"

	"github.com/gin-gonic/gin"
)

type OCRInput struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// DetectAmount is a stand-in for a real OCR service: it returns a random
// amount in the 100-49999 range. The reviewer can always override the
// pre-filled value, so the result is never authoritative.
func DetectAmount(c *gin.Context) {
	var in OCRInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "image_url is required", err)
		return
	}

	detected := rand.Intn(49900) + 100

	utils.Success(c, "amount detected", gin.H{
		"amount":   detected,
		"currency": "INR",
	})
}
