package pdf

import (
	"github.com/onboarding-qr-generator/internal/models"
	"github.com/onboarding-qr-generator/internal/qr"
)

var guestInstructions = []string{
	"1 - Open Staffx MC (indien nog niet geopend)",
	"2 - Klik op ONBOARDING QR",
	"3 - Use camera - en scan de ONBOARDING QR",
	"4 - Login met ClientX-QR",
	"5 - Use camera - en scan de USER QR",
}

// drawGuestPage renders one guest configuration page: the onboarding QR on
// the left, the matched user's RFID QR (or a placeholder) on the right, the
// event info centered between them, and the shorter instruction list.
func (d *doc) drawGuestPage(ob *models.Onboarding) {
	d.addPage()

	user := d.handout.Users[ob.Name]

	// Header band
	d.setFill(d.brand)
	d.pdf.Rect(0, 0, d.pageW, 120, "F")

	d.setText(white)
	d.font("B", 32)
	d.textCentered(d.pageW/2, 40, "KASSA CONFIGURATIE")
	d.font("B", 18)
	d.textCentered(d.pageW/2, 65, ob.Name)

	// Section divider
	d.setDraw(d.brand)
	d.pdf.SetLineWidth(3)
	d.pdf.Line(50, 120, d.pageW-50, 120)

	// Step 1
	d.setText(d.brand)
	d.font("B", 20)
	d.textCentered(d.pageW/2, 150, "Toestel Configuratie")
	d.pdf.SetLineWidth(2)
	d.pdf.Line(d.pageW/2-80, 155, d.pageW/2+80, 155)

	const qrSize = 140.0
	const framePad = 6.0
	qrY := 200.0
	leftX := 70.0
	rightX := d.pageW - qrSize - 70

	// Onboarding QR left
	payload := qr.OnboardingURL(d.handout.Tenant.Domain, ob.QRCode)
	d.embedQR(payload, leftX, qrY, qrSize)
	d.setDraw(d.brand)
	d.pdf.SetLineWidth(2)
	d.pdf.Rect(leftX-framePad, qrY-framePad, qrSize+2*framePad, qrSize+2*framePad, "D")

	d.font("B", 11)
	d.setText(d.brand)
	d.textCentered(leftX+qrSize/2, qrY+qrSize+20, "ONBOARDING QR")

	// User QR right, or a grey placeholder when no user matched
	if user != nil && user.QRCode != "" {
		d.embedQR(user.QRCode, rightX, qrY, qrSize)
		d.setDraw(d.brand)
		d.pdf.SetLineWidth(2)
		d.pdf.Rect(rightX-framePad, qrY-framePad, qrSize+2*framePad, qrSize+2*framePad, "D")

		d.font("B", 11)
		d.setText(d.brand)
		d.textCentered(rightX+qrSize/2, qrY+qrSize+20, "USER QR")
	} else {
		d.setDraw(ruleGray)
		d.pdf.SetLineWidth(2)
		d.pdf.Rect(rightX-framePad, qrY-framePad, qrSize+2*framePad, qrSize+2*framePad, "D")

		d.font("", 10)
		d.setText(lightGray)
		d.textCentered(rightX+qrSize/2, qrY+qrSize/2, "Geen USER QR")
		d.textCentered(rightX+qrSize/2, qrY+qrSize/2+15, "beschikbaar")
	}

	// Event info centered between the two QR frames
	infoX := (leftX + qrSize + framePad + rightX - framePad) / 2
	infoY := qrY + 10
	d.setText(black)

	writePair := func(label, value string) {
		d.font("B", 13)
		d.textCentered(infoX, infoY, label)
		infoY += 18
		d.font("", 12)
		d.textCentered(infoX, infoY, value)
		infoY += 28
	}

	if ob.EventName.String != "" {
		writePair("Event:", ob.EventName.String)
	}
	if ob.LocationName.String != "" {
		writePair("Locatie:", ob.LocationName.String)
	}
	if ob.SalesName.String != "" {
		writePair("Menu:", ob.SalesName.String)
	}
	writePair("Rollen:", orFallback(ob.Roles.String, "Geen rollen gespecifieerd"))
	if ob.ShowPaymentMethods() {
		d.font("B", 13)
		d.textCentered(infoX, infoY, "Betaalmethodes:")
		infoY += 18
		d.font("", 11)
		d.textCentered(infoX, infoY, ob.PaymentMethods.String)
		infoY += 28
	}

	// Step 2 sits below both the info block and the QR frames
	stepY := infoY + 20
	if floor := qrY + qrSize + 40; stepY < floor {
		stepY = floor
	}

	d.setText(d.brand)
	d.font("B", 20)
	d.textCentered(d.pageW/2, stepY, "Installatie Instructies")
	d.setDraw(d.brand)
	d.pdf.SetLineWidth(2)
	d.pdf.Line(d.pageW/2-90, stepY+5, d.pageW/2+90, stepY+5)

	d.setText(black)
	d.font("", 14)
	stepY += 35
	for _, line := range guestInstructions {
		d.text(70, stepY, line)
		stepY += 24
	}

	stepY += 10
	d.font("B", 13)
	d.setText(d.brand)
	d.text(70, stepY, "Tip:")
	stepY += 22
	d.font("", 12)
	d.setText(black)
	d.text(70, stepY, "Als je een van de 2 QR codes moet scannen - leg je hand even op de")
	stepY += 18
	d.text(70, stepY, "andere QR om problemen te vermijden.")

	d.drawWhatsAppBadge()

	if user != nil && user.Email != "" {
		d.font("B", 12)
		d.setText(d.brand)
		d.textCentered(d.pageW/2, d.pageH-45, "User: "+user.Email)
	}

	d.drawFooter()
}
