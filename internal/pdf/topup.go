package pdf

import (
	"bytes"
	"image"
	_ "image/png"
	"os"

	"github.com/onboarding-qr-generator/internal/models"
)

// topUpVideoURL is the walkthrough video linked from the manual page.
const topUpVideoURL = "https://youtu.be/S1DzBHeu9Rg"

// drawTopUpManualPage renders the TOPUP manual that follows each onboarding
// with a top-up role: the manual screenshot scaled to fit, plus a QR linking
// to the video walkthrough. A missing or unreadable image degrades to a
// warning panel so the run still completes.
func (r *Renderer) drawTopUpManualPage(d *doc, ob *models.Onboarding) {
	d.addPage()

	// Header band
	d.setFill(d.brand)
	d.pdf.Rect(0, 0, d.pageW, 120, "F")

	d.setText(white)
	d.font("B", 28)
	d.textCentered(d.pageW/2, 35, "TOPUP HANDLEIDING")
	d.font("B", 16)
	d.textCentered(d.pageW/2, 60, ob.Name)

	d.setDraw(d.brand)
	d.pdf.SetLineWidth(2)
	d.pdf.Line(30, 120, d.pageW-30, 120)

	imageBottom := r.drawManualImage(d)
	d.drawVideoQR(imageBottom)

	d.drawFooter()
}

// drawManualImage places the manual screenshot and returns the y position of
// its bottom edge, so the video QR can center in the remaining space.
func (r *Renderer) drawManualImage(d *doc) float64 {
	png, err := os.ReadFile(r.topUpManualPath)
	if err != nil {
		r.log.Warn().Err(err).Str("path", r.topUpManualPath).Msg("TOPUP manual image unavailable")
		return d.drawManualFallback()
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		r.log.Warn().Err(err).Str("path", r.topUpManualPath).Msg("TOPUP manual image unreadable")
		return d.drawManualFallback()
	}

	iw, ih := float64(cfg.Width), float64(cfg.Height)
	availW := d.pageW - 80
	availH := d.pageH - 200

	scale := availW / iw
	if s := availH / ih; s < scale {
		scale = s
	}
	if scale < 0.6 {
		scale = 0.6
	}
	if scale > 1.8 {
		scale = 1.8
	}

	top := 150.0
	if top+ih*scale > d.pageH-120 {
		// The clamp made it too tall; fall back to the unclamped fit
		scale = availW / iw
		if s := availH / ih; s < scale {
			scale = s
		}
	}

	nw, nh := iw*scale, ih*scale
	x := (d.pageW - nw) / 2

	// Light backing panel behind the screenshot
	d.setFill(panelGray)
	d.setDraw(panelBorder)
	d.pdf.SetLineWidth(1)
	d.pdf.Rect(x-10, top-10, nw+20, nh+20, "FD")

	d.embedPNG(png, x, top, nw, nh)

	return top + nh
}

// drawManualFallback renders the warning panel used when the screenshot
// cannot be loaded, and returns its bottom edge.
func (d *doc) drawManualFallback() float64 {
	top := 180.0
	panelW := d.pageW - 120
	panelX := (d.pageW - panelW) / 2

	d.setFill(rgb{255, 235, 235})
	d.setDraw(darkRed)
	d.pdf.SetLineWidth(2)
	d.pdf.RoundedRect(panelX, top, panelW, 100, 8, "1234", "FD")

	d.setText(darkRed)
	d.font("B", 16)
	d.textCentered(d.pageW/2, top+40, "TOPUP handleiding afbeelding niet gevonden")
	d.font("", 12)
	d.setText(black)
	d.textCentered(d.pageW/2, top+65, "Controleer de assets map en genereer opnieuw.")
	d.textCentered(d.pageW/2, top+85, "De video uitleg hieronder blijft beschikbaar.")

	return top + 100
}

// drawVideoQR centers the video-walkthrough QR between the image bottom and
// the footer area.
func (d *doc) drawVideoQR(imageBottom float64) {
	const qrSize = 120.0

	mid := (imageBottom + d.pageH - 60) / 2
	qrTop := mid - 92.5
	qrX := (d.pageW - qrSize) / 2

	// White pane behind the QR and its caption bar
	d.setFill(white)
	d.setDraw(rgb{221, 221, 221})
	d.pdf.SetLineWidth(1)
	d.pdf.Rect(qrX-8, qrTop-8, qrSize+16, qrSize+16, "FD")

	d.embedQR(topUpVideoURL, qrX, qrTop, qrSize)

	// Red "watch online" bar under the QR
	d.setFill(ytRed)
	d.setDraw(darkRed)
	d.pdf.SetLineWidth(1)
	d.pdf.Rect(qrX-8, qrTop+133, qrSize+16, 30, "FD")

	d.setText(white)
	d.font("B", 14)
	d.textCentered(d.pageW/2, qrTop+155, "Bekijk Online")

	d.setText(gray)
	d.font("", 11)
	d.textCentered(d.pageW/2, qrTop+181, "Scan voor video uitleg")
}
