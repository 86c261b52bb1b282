package docgen

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Layout constants, in millimeters on an A4 portrait page (210 x 297).
const (
	leftMargin   = 20.0
	rightMargin  = 20.0
	topMargin    = 20.0
	contentWidth = 170.0
	lineHeight   = 6.0

	// Y position past which a new section must start on a fresh page.
	breakThreshold = 250.0

	bodyFontSize  = 11.0
	titleFontSize = 16.0
)

// TextLine is one physically written line, recorded for the document
// transcript (saved-document excerpts and layout assertions).
type TextLine struct {
	Page int
	Y    float64
	Text string
}

// PageWriter owns the PDF document, the vertical cursor and the page list.
// Every generator writes through it, so the page-break threshold and the
// header/footer stamping live in exactly one place.
type PageWriter struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	y     float64
	pageW float64
	pageH float64
	lines []TextLine
	now   time.Time
}

func NewPageWriter() *PageWriter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	w, h := pdf.GetPageSize()

	pw := &PageWriter{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor("cp1250"),
		pageW: w,
		pageH: h,
		now:   time.Now(),
	}
	pdf.AddPage()
	pw.y = topMargin
	return pw
}

// encode maps UTF-8 text into the cp1250 code page. Romanian comma-below
// diacritics are normalized to their cedilla forms first, since cp1250 only
// carries the latter.
var commaBelow = strings.NewReplacer("ș", "ş", "ț", "ţ", "Ș", "Ş", "Ț", "Ţ")

func (w *PageWriter) encode(s string) string {
	return w.tr(commaBelow.Replace(s))
}

func (w *PageWriter) record(text string) {
	w.lines = append(w.lines, TextLine{Page: w.pdf.PageNo(), Y: w.y, Text: text})
}

// SetFont selects a Helvetica variant; style is "" or "B".
func (w *PageWriter) SetFont(style string, size float64) {
	w.pdf.SetFont("Helvetica", style, size)
}

func (w *PageWriter) Y() float64        { return w.y }
func (w *PageWriter) SetY(y float64)    { w.y = y }
func (w *PageWriter) Advance(d float64) { w.y += d }
func (w *PageWriter) PageCount() int    { return w.pdf.PageNo() }

// Transcript returns every written line in write order.
func (w *PageWriter) Transcript() []TextLine { return w.lines }

// Text returns the full plain-text content of the document.
func (w *PageWriter) Text() string {
	parts := make([]string, len(w.lines))
	for i, l := range w.lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}

// TextAt writes a single line at the given X without advancing the cursor.
// Used for side-by-side blocks (signatures, invoice columns).
func (w *PageWriter) TextAt(x float64, text string) {
	w.pdf.Text(x, w.y, w.encode(text))
	w.record(text)
}

// Line writes a single line at the left margin and advances one line height.
func (w *PageWriter) Line(text string) {
	w.TextAt(leftMargin, text)
	w.y += lineHeight
}

// CenteredAt writes text horizontally centered at an absolute Y.
func (w *PageWriter) CenteredAt(y float64, text string) {
	w.centeredRaw(y, text)
	w.lines = append(w.lines, TextLine{Page: w.pdf.PageNo(), Y: y, Text: text})
}

// Rule draws a horizontal line at the given Y.
func (w *PageWriter) Rule(x1, x2, y float64) {
	w.pdf.Line(x1, y, x2, y)
}

// SignatureLine draws an underline at the current Y for a physical signature.
func (w *PageWriter) SignatureLine(x1, x2 float64) {
	w.pdf.Line(x1, w.y, x2, w.y)
}

// Paragraph wraps text to the standard content width at the left margin.
func (w *PageWriter) Paragraph(text string) {
	w.ParagraphAt(text, leftMargin, contentWidth)
}

// ParagraphAt wraps text to maxWidth starting at x, writing line by line and
// advancing the cursor below the last written line. A line that would land
// past the break threshold moves to a fresh page first, so no text is ever
// written beyond it.
func (w *PageWriter) ParagraphAt(text string, x, maxWidth float64) {
	for _, line := range w.pdf.SplitText(w.encode(text), maxWidth) {
		if w.y > breakThreshold {
			w.breakPage()
		}
		w.pdf.Text(x, w.y, line)
		w.record(line)
		w.y += lineHeight
	}
}

// Section writes a bold title followed by a wrapped body paragraph. The
// whole section is measured first: if it would cross the break threshold and
// fits on a fresh page, the page is broken before the title, so a title is
// never orphaned from its body.
func (w *PageWriter) Section(title, body string) {
	w.SetFont("", bodyFontSize)
	needed := 7.0 + float64(len(w.pdf.SplitText(w.encode(body), contentWidth)))*lineHeight
	w.EnsureSpace(needed)

	w.SetFont("B", bodyFontSize)
	w.Line(title)
	w.y += 1
	w.SetFont("", bodyFontSize)
	w.Paragraph(body)
	w.y += 8
}

// EnsureSpace breaks the page when fewer than needed millimeters remain
// above the break threshold (and the block could fit on a fresh page).
func (w *PageWriter) EnsureSpace(needed float64) {
	if w.y+needed > breakThreshold && topMargin+needed <= breakThreshold+lineHeight {
		w.breakPage()
	}
	if w.y > breakThreshold {
		w.breakPage()
	}
}

func (w *PageWriter) breakPage() {
	w.stampFooter()
	w.pdf.AddPage()
	w.y = topMargin
}

// Header stamps the standard document header: company identity centered,
// title in capitals, separator rule. Leaves the cursor at the body start.
func (w *PageWriter) Header(title string, c CompanyData) {
	w.SetFont("B", 14)
	w.CenteredAt(20, orFallback(c.CompanyName, "Denumire Firmă"))

	w.SetFont("", 10)
	w.CenteredAt(27, "CUI: "+orDash(c.CUI))
	w.CenteredAt(33, "Adresa: "+orDash(c.Address))

	w.SetFont("B", titleFontSize)
	w.CenteredAt(50, strings.ToUpper(title))

	w.pdf.SetLineWidth(0.5)
	w.Rule(leftMargin, w.pageW-rightMargin, 55)
	w.pdf.SetLineWidth(0.2)

	w.y = 65
	w.SetFont("", bodyFontSize)
}

// stampFooter writes the page footer. Footer lines are positioned below the
// break threshold on purpose and are not part of the document transcript.
func (w *PageWriter) stampFooter() {
	w.SetFont("", 8)
	w.centeredRaw(w.pageH-15, "Generat cu ComplianceBot - "+FormatDate(w.now))
	w.centeredRaw(w.pageH-10, fmt.Sprintf("Pagina %d", w.pdf.PageNo()))
	w.SetFont("", bodyFontSize)
}

func (w *PageWriter) centeredRaw(y float64, text string) {
	enc := w.encode(text)
	w.pdf.Text((w.pageW-w.pdf.GetStringWidth(enc))/2, y, enc)
}

// Output stamps the footer on the final page and serializes the PDF.
func (w *PageWriter) Output() ([]byte, error) {
	w.stampFooter()
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatDate renders a date the Romanian way (dd.mm.yyyy).
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateField parses an ISO date field value and renders it Romanian
// style; an empty or unparseable value falls back to today.
func FormatDateField(value string) string {
	if value == "" {
		return FormatDate(time.Now())
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return FormatDate(time.Now())
	}
	return FormatDate(t)
}
