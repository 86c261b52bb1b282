package docgen

import (
	"fmt"
	"strings"
	"time"
)

func renderInvoice(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()

	pw.SetFont("B", 20)
	pw.CenteredAt(25, "FACTURĂ")
	pw.SetFont("B", 12)
	pw.CenteredAt(33, "Nr. "+e.Get("invoiceNumber", "001"))
	pw.SetFont("", 12)
	pw.CenteredAt(40, "Data: "+FormatDateField(e["invoiceDate"]))

	// Supplier and client blocks, side by side.
	pw.SetY(55)
	pw.SetFont("B", bodyFontSize)
	pw.TextAt(20, "FURNIZOR:")
	pw.Advance(6)
	pw.SetFont("", bodyFontSize)
	pw.TextAt(20, orFallback(c.CompanyName, placeholder("Nume Furnizor")))
	pw.Advance(5)
	pw.TextAt(20, "CUI: "+orFallback(c.CUI, placeholder("CUI")))
	pw.Advance(5)
	pw.TextAt(20, orFallback(c.Address, placeholder("Adresă")))

	pw.SetY(55)
	pw.SetFont("B", bodyFontSize)
	pw.TextAt(110, "CLIENT:")
	pw.Advance(6)
	pw.SetFont("", bodyFontSize)
	pw.TextAt(110, e.Get("clientName", placeholder("Nume Client")))
	pw.Advance(5)
	pw.TextAt(110, "CUI: "+e.Get("clientCui", placeholder("CUI")))
	pw.Advance(5)
	pw.TextAt(110, e.Get("clientAddress", placeholder("Adresă")))

	pw.SetY(95)
	pw.Rule(20, 190, pw.Y())
	pw.Advance(10)

	pw.SetFont("B", bodyFontSize)
	pw.TextAt(20, "Descriere servicii/produse")
	pw.TextAt(160, "Valoare")
	pw.Advance(5)
	pw.Rule(20, 190, pw.Y())
	pw.Advance(10)

	pw.SetFont("", bodyFontSize)
	for _, service := range strings.Split(e.Get("services", "Servicii - 0 RON"), "\n") {
		pw.ParagraphAt(service, 20, 130)
		pw.Advance(5)
	}

	pw.Advance(10)
	pw.EnsureSpace(60)
	pw.Rule(20, 190, pw.Y())
	pw.Advance(10)

	pw.SetFont("B", 14)
	pw.TextAt(140, fmt.Sprintf("TOTAL: %s RON", e.Get("totalAmount", "0")))

	pw.Advance(30)
	pw.SetFont("", bodyFontSize)
	pw.Line("Semnătură și ștampilă furnizor:")
	pw.Advance(9)
	pw.SignatureLine(20, 80)

	return pw
}

func renderServiceContract(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Contract de Prestări Servicii", c)

	pw.Paragraph(fmt.Sprintf("Încheiat astăzi, %s, între:", FormatDateField(e["startDate"])))
	pw.Advance(10)

	pw.SetFont("B", bodyFontSize)
	pw.Line("BENEFICIAR:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, CUI %s, cu sediul în %s",
		orFallback(c.CompanyName, "Denumire Firmă"), orDash(c.CUI), orDash(c.Address)))
	pw.Advance(10)

	pw.SetFont("B", bodyFontSize)
	pw.Line("PRESTATOR:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, CUI %s, cu sediul în %s",
		e.Get("providerName", placeholder("Nume")),
		e.Get("providerCui", placeholder("CUI")),
		e.Get("providerAddress", placeholder("Adresă"))))
	pw.Advance(12)

	endClause := "finalizarea serviciilor"
	if e["endDate"] != "" {
		endClause = FormatDateField(e["endDate"])
	}

	articles := []struct{ title, body string }{
		{
			"Art. 1 - OBIECTUL CONTRACTULUI",
			"Prestatorul se obligă să furnizeze următoarele servicii: " + e.Get("serviceDescription", placeholder("Descriere servicii")),
		},
		{
			"Art. 2 - DURATA",
			fmt.Sprintf("Contractul este valabil de la %s până la %s.", FormatDateField(e["startDate"]), endClause),
		},
		{
			"Art. 3 - PREȚ ȘI PLATĂ",
			fmt.Sprintf("Valoarea contractului: %s RON. Plata se efectuează în termen de 30 zile de la emiterea facturii.", e.Get("contractValue", placeholder("Valoare"))),
		},
		{
			"Art. 4 - OBLIGAȚIILE PRESTATORULUI",
			"Prestatorul se obligă să execute serviciile la standardele de calitate convenite și să respecte termenele stabilite.",
		},
		{
			"Art. 5 - OBLIGAȚIILE BENEFICIARULUI",
			"Beneficiarul se obligă să furnizeze informațiile necesare și să efectueze plata la termen.",
		},
		{
			"Art. 6 - CONFIDENȚIALITATE",
			"Părțile se obligă să păstreze confidențialitatea informațiilor obținute în executarea contractului.",
		},
		{
			"Art. 7 - LITIGII",
			"Litigiile se soluționează pe cale amiabilă sau, în caz contrar, de instanțele competente.",
		},
	}
	for _, a := range articles {
		pw.Section(a.title, a.body)
	}

	pw.EnsureSpace(20)
	pw.Advance(10)
	pw.SetFont("B", bodyFontSize)
	pw.TextAt(30, "BENEFICIAR,")
	pw.TextAt(130, "PRESTATOR,")

	return pw
}

func renderSelfDeclaration(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()

	pw.SetFont("B", titleFontSize)
	pw.CenteredAt(30, "DECLARAȚIE PE PROPRIE RĂSPUNDERE")
	pw.SetY(50)
	pw.SetFont("", bodyFontSize)

	pw.Paragraph(fmt.Sprintf("Subsemnatul/a %s, CNP %s, domiciliat/ă în %s,",
		e.Get("declarantName", placeholder("Nume")),
		e.Get("declarantCNP", placeholder("CNP")),
		e.Get("declarantAddress", placeholder("Adresă"))))
	pw.Advance(15)

	pw.SetFont("B", bodyFontSize)
	pw.Line("DECLAR PE PROPRIE RĂSPUNDERE:")
	pw.Advance(4)

	pw.SetFont("", bodyFontSize)
	pw.Paragraph(e.Get("declarationContent", placeholder("Conținutul declarației")))
	pw.Advance(15)

	pw.Paragraph("Dau prezenta declarație cunoscând prevederile art. 326 din Codul Penal privind falsul în declarații.")

	pw.Advance(25)
	pw.EnsureSpace(40)
	pw.TextAt(20, "Data: "+FormatDate(time.Now()))
	pw.TextAt(120, "Semnătura:")
	pw.Advance(20)
	pw.SignatureLine(120, 180)

	return pw
}
