package utils

import "testing"

func TestScreenshotThumb(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"non-cloudinary untouched", "https://example.com/a.png", "https://example.com/a.png"},
		{
			"cloudinary transformed",
			"https://res.cloudinary.com/demo/image/upload/v1/shot.png",
			"https://res.cloudinary.com/demo/image/upload/f_auto,q_auto,w_512,c_limit/v1/shot.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScreenshotThumb(tt.in); got != tt.want {
				t.Fatalf("ScreenshotThumb(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
