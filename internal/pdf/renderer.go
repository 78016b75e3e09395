// Package pdf composes the multi-page A4 handout documents. The renderer is
// pure layout: it receives a fully assembled models.Handout and performs no
// database work, so page geometry stays deterministic and testable.
package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"github.com/onboarding-qr-generator/internal/models"
	"github.com/onboarding-qr-generator/internal/qr"
)

// Brand and furniture colors used across both template variants.
var (
	appBlue      = rgb{27, 79, 114}  // application template header
	guestPurple  = rgb{106, 27, 154} // guest template header
	waGreen      = rgb{37, 211, 102} // WhatsApp badge frame
	ytRed        = rgb{255, 0, 0}    // "Bekijk Online" bar
	darkRed      = rgb{204, 0, 0}
	warnOrange   = rgb{255, 102, 0}
	refundOrange = rgb{204, 102, 0}
	okGreen      = rgb{0, 128, 0}
	topupBlue    = rgb{0, 102, 204}
	black        = rgb{0, 0, 0}
	white        = rgb{255, 255, 255}
	gray         = rgb{102, 102, 102}
	lightGray    = rgb{153, 153, 153}
	ruleGray     = rgb{204, 204, 204}
	panelGray    = rgb{248, 249, 250}
	panelBorder  = rgb{233, 236, 239}
)

type rgb struct{ r, g, b int }

// onboardingQRSize is the pixel size QR PNGs are rendered at before being
// scaled onto the page.
const onboardingQRSize = 400

// currenciesPageThreshold is the onboarding count above which the currencies
// table moves from the overview to its own page.
const currenciesPageThreshold = 15

// Renderer draws handout documents.
type Renderer struct {
	topUpManualPath string
	log             zerolog.Logger
}

// New creates a renderer. manualPath points at the TOPUP manual image; a
// missing file degrades to a fallback panel, not an error.
func New(manualPath string, log zerolog.Logger) *Renderer {
	return &Renderer{
		topUpManualPath: manualPath,
		log:             log.With().Str("component", "pdf").Logger(),
	}
}

// NeedsCurrenciesPage reports whether a run with n onboardings puts the
// currencies table on a dedicated page.
func NeedsCurrenciesPage(n int) bool {
	return n > currenciesPageThreshold
}

// TotalPages computes the page count before anything is drawn: the overview,
// an optional currencies page, one page per onboarding and one manual page
// per TOPUP onboarding.
func TotalPages(onboardings []models.Onboarding) int {
	total := 1 + len(onboardings)
	for i := range onboardings {
		if onboardings[i].HasTopUpRole() {
			total++
		}
	}
	if NeedsCurrenciesPage(len(onboardings)) {
		total++
	}
	return total
}

// doc carries the drawing state for one document.
type doc struct {
	pdf     *fpdf.Fpdf
	pageW   float64
	pageH   float64
	brand   rgb
	handout *models.Handout
	total   int
	page    int
	imgSeq  int
}

// Render draws the handout into w and returns the page count.
func (r *Renderer) Render(h *models.Handout, w io.Writer) (int, error) {
	p := fpdf.New("P", "pt", "A4", "")
	p.SetAutoPageBreak(false, 0)

	pageW, pageH := p.GetPageSize()

	brand := appBlue
	if h.Variant == models.TemplateGuest {
		brand = guestPurple
	}

	d := &doc{
		pdf:     p,
		pageW:   pageW,
		pageH:   pageH,
		brand:   brand,
		handout: h,
		total:   TotalPages(h.Onboardings),
	}

	d.drawOverviewPage()

	if NeedsCurrenciesPage(len(h.Onboardings)) {
		d.drawCurrenciesPage()
	}

	for i := range h.Onboardings {
		ob := &h.Onboardings[i]
		if h.Variant == models.TemplateGuest {
			d.drawGuestPage(ob)
		} else {
			d.drawApplicationPage(ob)
		}
		if ob.HasTopUpRole() {
			r.drawTopUpManualPage(d, ob)
		}
	}

	if p.Err() {
		return 0, fmt.Errorf("failed to compose document: %w", p.Error())
	}
	if err := p.Output(w); err != nil {
		return 0, fmt.Errorf("failed to write document: %w", err)
	}

	return p.PageCount(), nil
}

// addPage starts a new page and bumps the page counter.
func (d *doc) addPage() {
	d.pdf.AddPage()
	d.page++
}

// Drawing helpers. fpdf uses a top-left origin and baseline text placement.

func (d *doc) setFill(c rgb) { d.pdf.SetFillColor(c.r, c.g, c.b) }
func (d *doc) setDraw(c rgb) { d.pdf.SetDrawColor(c.r, c.g, c.b) }
func (d *doc) setText(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }

func (d *doc) font(style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
}

// text draws s with its baseline at y, left edge at x.
func (d *doc) text(x, y float64, s string) {
	d.pdf.Text(x, y, tr(s))
}

// textCentered draws s centered on x with its baseline at y.
func (d *doc) textCentered(x, y float64, s string) {
	t := tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(t)/2, y, t)
}

// embedQR renders payload as a QR PNG and places it on the page.
func (d *doc) embedQR(payload string, x, y, size float64) {
	png, err := qr.PNG(payload, onboardingQRSize)
	if err != nil {
		// Placeholder box so the page stays usable
		d.setDraw(black)
		d.setFill(white)
		d.pdf.SetLineWidth(1)
		d.pdf.Rect(x, y, size, size, "FD")
		d.setText(black)
		d.font("", 6)
		d.textCentered(x+size/2, y+size/2, "QR")
		return
	}
	d.embedPNG(png, x, y, size, size)
}

// embedPNG registers raw PNG bytes under a fresh name and draws them.
func (d *doc) embedPNG(png []byte, x, y, w, h float64) {
	d.imgSeq++
	name := fmt.Sprintf("img-%d", d.imgSeq)
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(png))
	d.pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
}

// drawFooter renders the shared page furniture: generation stamp centered and
// page numbering bottom-left.
func (d *doc) drawFooter() {
	stamp := d.handout.GeneratedAt.Format("02/01/2006 15:04")
	footer := fmt.Sprintf("anyKrowd NV - gegenereerd op: %s - CLIENT: %s", stamp, d.handout.Tenant.TenantID)

	d.font("", 10)
	d.setText(gray)
	d.textCentered(d.pageW/2, d.pageH-30, footer)

	d.font("", 9)
	d.setText(lightGray)
	d.text(20, d.pageH-15, fmt.Sprintf("Pagina %d van %d", d.page, d.total))
}

// drawWhatsAppBadge renders the green framed WhatsApp QR bottom-right plus
// the two-line support text. No-op when the run has no WhatsApp group.
func (d *doc) drawWhatsAppBadge() {
	url := d.handout.WhatsAppURL
	if url == "" {
		return
	}

	// Support text above the footer
	d.font("B", 12)
	d.setText(d.brand)
	d.textCentered(d.pageW/2, d.pageH-70, "Heb je problemen - contacteer ons via WhatsApp")
	d.font("", 11)
	d.textCentered(d.pageW/2, d.pageH-55, "en stuur ons een video of foto van het probleem")

	const qrSize = 80.0
	const pad = 8.0
	qrX := d.pageW - qrSize - 30
	qrY := d.pageH - 50 - qrSize

	frameX := qrX - pad
	frameY := qrY - pad
	frameSize := qrSize + 2*pad

	// Green frame with a white inner pane
	d.setFill(waGreen)
	d.setDraw(waGreen)
	d.pdf.SetLineWidth(3)
	d.pdf.RoundedRect(frameX, frameY, frameSize, frameSize, 8, "1234", "FD")

	const inner = 3.0
	d.setFill(white)
	d.setDraw(white)
	d.pdf.RoundedRect(frameX+inner, frameY+inner, frameSize-2*inner, frameSize-2*inner, 5, "1234", "FD")

	d.embedQR(url, qrX, qrY, qrSize)

	// Caption bar under the frame
	labelY := frameY + frameSize + 5
	d.setFill(waGreen)
	d.setDraw(waGreen)
	d.pdf.RoundedRect(frameX, labelY, frameSize, 15, 5, "1234", "FD")

	d.font("B", 9)
	d.setText(white)
	d.textCentered(frameX+frameSize/2, labelY+11, "Scan met camera")
}

// truncate shortens s to max runes with a trailing ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// orFallback returns s or the fallback when s is empty.
func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// tr maps UTF-8 to the cp1252 expected by the core fonts.
var tr = func() func(string) string {
	p := fpdf.New("P", "pt", "A4", "")
	return p.UnicodeTranslatorFromDescriptor("")
}()
