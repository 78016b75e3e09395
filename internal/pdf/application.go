package pdf

import (
	"github.com/onboarding-qr-generator/internal/models"
	"github.com/onboarding-qr-generator/internal/qr"
)

var applicationInstructions = []string{
	"1 - Open Staffx MC",
	"2 - Klik op ONBOARDING QR",
	"3 - Use camera - en richt je op de bovenstaande QR code",
	"4 - Login met ClientX-QR",
	"5 - Open de applicatie van het evenement op jouw smartphone",
	"6 - Open de Payment QR",
	"7 - Scan met het kassa toestel - de QR code op jouw gsm",
}

// drawApplicationPage renders one kassa/terminal configuration page: header,
// a single large onboarding QR with the event info beside it, and the
// install instructions.
func (d *doc) drawApplicationPage(ob *models.Onboarding) {
	d.addPage()

	// Header band
	d.setFill(d.brand)
	d.pdf.Rect(0, 0, d.pageW, 120, "F")

	d.setText(white)
	d.font("B", 32)
	d.textCentered(d.pageW/2, 40, "KASSA CONFIGURATIE")
	d.font("B", 18)
	d.textCentered(d.pageW/2, 65, ob.Name)

	// Step 1
	d.setText(d.brand)
	d.font("B", 20)
	d.textCentered(d.pageW/2, 150, "Toestel Configuratie")
	d.setDraw(d.brand)
	d.pdf.SetLineWidth(2)
	d.pdf.Line(d.pageW/2-80, 155, d.pageW/2+80, 155)

	// Onboarding QR left, framed
	const qrSize = 200.0
	qrX, qrY := 50.0, 200.0
	payload := qr.OnboardingURL(d.handout.Tenant.Domain, ob.QRCode)
	d.embedQR(payload, qrX, qrY, qrSize)

	d.setDraw(d.brand)
	d.pdf.SetLineWidth(4)
	d.pdf.Rect(qrX-10, qrY-10, qrSize+20, qrSize+20, "D")

	// Event info beside the QR, centered on its middle
	d.setText(black)
	d.font("B", 12)
	infoX := 280.0
	infoY := qrY + qrSize/2 - 50

	if ob.EventName.String != "" {
		d.text(infoX, infoY, "Evenement: "+ob.EventName.String)
		infoY += 25
	}
	if ob.LocationName.String != "" {
		d.text(infoX, infoY, "Locatie: "+ob.LocationName.String)
		infoY += 25
	}
	if ob.SalesName.String != "" {
		d.text(infoX, infoY, "Sales: "+ob.SalesName.String)
		infoY += 25
	}
	d.text(infoX, infoY, "Rollen: "+orFallback(ob.Roles.String, "Geen rollen gespecifieerd"))
	infoY += 25
	if ob.ShowPaymentMethods() {
		d.text(infoX, infoY, "Betaalmethodes: "+ob.PaymentMethods.String)
	}

	// Step 2
	stepY := qrY + qrSize + 90
	d.setText(d.brand)
	d.font("B", 20)
	d.textCentered(d.pageW/2, stepY, "Installatie Instructies")
	d.setDraw(d.brand)
	d.pdf.SetLineWidth(2)
	d.pdf.Line(d.pageW/2-90, stepY+5, d.pageW/2+90, stepY+5)

	d.setText(black)
	d.font("", 14)
	stepY += 50
	for _, line := range applicationInstructions {
		d.text(70, stepY, line)
		stepY += 25
	}

	d.drawWhatsAppBadge()
	d.drawFooter()
}
