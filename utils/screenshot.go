package utils

import "strings"

// If the evidence screenshot lives on Cloudinary, inject a transform so
// review cards fetch a small auto-compressed copy instead of the original.
func ScreenshotThumb(secureURL string) string {
	if secureURL == "" {
		return secureURL
	}
	if !strings.Contains(secureURL, "/image/upload/") {
		return secureURL // not Cloudinary
	}
	return strings.Replace(
		secureURL,
		"/image/upload/",
		"/image/upload/f_auto,q_auto,w_512,c_limit/",
		1,
	)
}
