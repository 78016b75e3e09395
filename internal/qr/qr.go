// Package qr builds the onboarding URL payloads and renders QR code images.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// OnboardingURL is the payload encoded in every onboarding QR. The fragment
// routes the staff app straight to the signup flow.
func OnboardingURL(domain, code string) string {
	return fmt.Sprintf("https://%s/?onboardingQrCode=%s#/auth/signuphome", domain, code)
}

// PNG renders a payload as a QR code PNG of sizePx pixels. Low error
// correction keeps the module grid coarse enough to scan from a printout.
func PNG(payload string, sizePx int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Low, sizePx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR payload: %w", err)
	}
	return png, nil
}
