package pdf

import (
	"fmt"
	"strings"

	"github.com/onboarding-qr-generator/internal/identity"
	"github.com/onboarding-qr-generator/internal/models"
)

// drawOverviewPage renders page 1: a compact table of every onboarding with
// the event schedule, refund window and currency information around it.
func (d *doc) drawOverviewPage() {
	d.addPage()
	h := d.handout

	// Compact header band
	d.setFill(d.brand)
	d.pdf.Rect(0, 0, d.pageW, 70, "F")

	d.setText(white)
	d.font("B", 18)
	d.textCentered(d.pageW/2, 30, "CONFIGURATIE OVERZICHT")
	d.font("B", 12)
	client := "CLIENT: " + strings.ToUpper(h.Tenant.TenantID)
	if h.Variant == models.TemplateApplication {
		client += " | KASSA SETUP"
	}
	d.textCentered(d.pageW/2, 50, client)

	y := 90.0

	if len(h.Onboardings) > 0 {
		y += 30
		d.font("B", 26)
		d.setText(d.brand)
		d.textCentered(d.pageW/2, y, "EVENT: "+eventName(h))

		if times := eventTimes(h.Event); times != "" {
			y += 35
			d.font("B", 16)
			d.setText(black)
			d.textCentered(d.pageW/2, y, times)
		}

		if rf := refundLine(h.Refund); rf != "" {
			y += 30
			d.font("B", 14)
			d.setText(refundOrange)
			d.textCentered(d.pageW/2, y, rf)
			y += 10
		}

		y += 40
		d.font("B", 18)
		d.setText(d.brand)
		d.textCentered(d.pageW/2, y, fmt.Sprintf("TOTAAL CONFIGURATIES: %d", len(h.Onboardings)))
	}

	y += 50
	y = d.drawOverviewTable(y)

	// Currencies live here unless they moved to their own page
	if NeedsCurrenciesPage(len(h.Onboardings)) {
		y += 30
		d.font("B", 14)
		d.setText(d.brand)
		d.textCentered(d.pageW/2, y, "Currencies Information")
		y += 20
		d.font("I", 12)
		d.setText(gray)
		d.textCentered(d.pageW/2, y, "Zie aparte currencies pagina voor details")
	} else {
		d.drawCurrenciesSection(y + 40)
	}

	d.font("I", 11)
	d.setText(d.brand)
	if NeedsCurrenciesPage(len(h.Onboardings)) {
		d.textCentered(d.pageW/2, d.pageH-70, "Zie pagina 2 voor currencies info, daarna QR codes voor configuratie")
	} else {
		d.textCentered(d.pageW/2, d.pageH-70, "Scan de QR codes op de volgende pagina's voor configuratie")
	}

	d.drawFooter()
}

// overviewRows caps how many onboardings the table shows before deferring to
// the individual pages.
const overviewRows = 25

// drawOverviewTable renders the onboarding table and returns the y position
// below it. The guest variant carries user and match-status columns.
func (d *doc) drawOverviewTable(y float64) float64 {
	h := d.handout
	guest := h.Variant == models.TemplateGuest

	var tableW float64
	var cols []float64
	var headers []string
	if guest {
		tableW = 520
		startX := (d.pageW - tableW) / 2
		cols = []float64{startX, startX + 80, startX + 160, startX + 250, startX + 330, startX + 420}
		headers = []string{"NAAM", "GEBRUIKER", "ROLLEN", "BETALING", "LOCATIE", "STATUS"}
	} else {
		tableW = 450
		startX := (d.pageW - tableW) / 2
		cols = []float64{startX, startX + 100, startX + 200, startX + 300, startX + 380}
		headers = []string{"NAAM", "ROLLEN", "BETALING", "LOCATIE", "STATUS"}
	}

	d.setText(black)
	d.font("B", 10)
	for i, hd := range headers {
		d.text(cols[i], y, hd)
	}

	d.setDraw(ruleGray)
	d.pdf.SetLineWidth(1)
	d.pdf.Line(cols[0], y+5, cols[0]+tableW, y+5)

	y += 20
	d.font("", 9)

	shown := 0
	for i := range h.Onboardings {
		if y > d.pageH-80 || shown >= overviewRows {
			break
		}
		ob := &h.Onboardings[i]

		d.setText(black)
		d.text(cols[0], y, truncate(orFallback(ob.Name, "Unknown"), 12))

		roles := truncate(orFallback(ob.Roles.String, "Geen"), 15)
		payment := truncate(orFallback(ob.PaymentMethods.String, "Geen"), 12)
		location := truncate(orFallback(ob.LocationName.String, "Geen"), 10)

		if guest {
			user := h.Users[ob.Name]
			if user != nil {
				d.text(cols[1], y, truncate(identity.LocalPart(user.Email), 10))
			} else {
				d.text(cols[1], y, "Geen user")
			}
			d.text(cols[2], y, roles)
			d.text(cols[3], y, payment)
			d.text(cols[4], y, location)

			if user != nil {
				d.setText(okGreen)
				d.text(cols[5], y, "OK")
			} else {
				d.setText(warnOrange)
				d.text(cols[5], y, "Missing")
			}
		} else {
			d.text(cols[1], y, roles)
			d.text(cols[2], y, payment)
			d.text(cols[3], y, location)

			if ob.HasTopUpRole() {
				d.setText(topupBlue)
				d.text(cols[4], y, "TOPUP")
			} else {
				d.setText(okGreen)
				d.text(cols[4], y, "OK")
			}
		}
		d.setText(black)

		y += 18
		shown++
	}

	if rest := len(h.Onboardings) - shown; rest > 0 {
		d.font("I", 9)
		d.setText(gray)
		d.textCentered(d.pageW/2, y+10, fmt.Sprintf("... en nog %d configuraties (zie individuele pagina's)", rest))
		y += 10
	}

	return y
}

// drawCurrenciesSection renders the currency table starting at y.
func (d *doc) drawCurrenciesSection(y float64) {
	h := d.handout

	d.font("B", 14)
	d.setText(d.brand)
	d.textCentered(d.pageW/2, y, "Currencies Information")
	y += 25

	if len(h.Currencies) == 0 {
		d.font("", 10)
		d.setText(gray)
		d.textCentered(d.pageW/2, y, "No currencies configured for this tenant")
		return
	}

	const tableW = 400.0
	startX := (d.pageW - tableW) / 2
	cols := []float64{startX, startX + 80, startX + 160, startX + 240, startX + 320}
	headers := []string{"Currency Name", "Exchange Rate", "Burning Weight", "Staff Order", "Client Order"}

	d.font("B", 9)
	d.setText(black)
	for i, hd := range headers {
		d.text(cols[i], y, hd)
	}

	d.setDraw(ruleGray)
	d.pdf.SetLineWidth(1)
	d.pdf.Line(startX, y+5, startX+tableW, y+5)

	y += 15
	d.font("", 8)

	// Repository returns them sorted by burning weight already; cap at 7 rows
	for i, c := range h.Currencies {
		if i >= 7 || y > d.pageH-120 {
			break
		}
		d.text(cols[0], y, truncate(c.Name, 20))
		d.text(cols[1], y, fmt.Sprintf("%.2f", c.ExchangeRate))
		d.text(cols[2], y, fmt.Sprintf("%g", c.BurningWeight))
		d.text(cols[3], y, fmt.Sprintf("%d", c.StaffOrder))
		d.text(cols[4], y, fmt.Sprintf("%d", c.ClientOrder))
		y += 12
	}

	y += 5
	d.font("I", 7)
	d.setText(gray)
	d.textCentered(d.pageW/2, y, "Exchange Rate: De waarde van 1 token. Indien >=1: meegenomen in revenue. Bij 0: meestal gratis coin (crew, etc).")
}

// drawCurrenciesPage renders the dedicated currencies page used for runs
// with too many onboardings to fit the table on the overview.
func (d *doc) drawCurrenciesPage() {
	d.addPage()

	d.setFill(d.brand)
	d.pdf.Rect(0, 0, d.pageW, 120, "F")

	d.setText(white)
	d.font("B", 32)
	d.textCentered(d.pageW/2, 40, "CURRENCIES INFORMATION")
	d.font("B", 18)
	d.textCentered(d.pageW/2, 70, "CLIENT: "+strings.ToUpper(d.handout.Tenant.TenantID))

	d.drawCurrenciesSection(150)

	d.drawFooter()
}

func eventName(h *models.Handout) string {
	if h.Event != nil && h.Event.Name != "" {
		return h.Event.Name
	}
	if len(h.Onboardings) > 0 && h.Onboardings[0].EventName.String != "" {
		return h.Onboardings[0].EventName.String
	}
	return "Niet gespecificeerd"
}

func eventTimes(e *models.Event) string {
	if e == nil {
		return ""
	}
	var s string
	if e.StartDatetime.Valid {
		s = "Start: " + e.StartDatetime.Time.Format("02/01/2006 15:04")
	}
	if e.EndDatetime.Valid {
		if s != "" {
			s += "  |  "
		}
		s += "Einde: " + e.EndDatetime.Time.Format("02/01/2006 15:04")
	}
	return s
}

func refundLine(rf *models.RefundWindow) string {
	if rf == nil || !rf.Enabled {
		return ""
	}
	var s string
	if rf.Start != "" {
		s = "Refund Start: " + rf.Start
	}
	if rf.End != "" {
		if s != "" {
			s += "  |  "
		}
		s += "Refund Einde: " + rf.End
	}
	return s
}
