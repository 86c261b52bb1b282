package docgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func renderFullTimeContract(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Contract Individual de Muncă", c)

	pw.Paragraph(fmt.Sprintf("Încheiat astăzi, %s, între:", FormatDateField(e["startDate"])))
	pw.Advance(8)

	pw.SetFont("B", bodyFontSize)
	pw.Line("ANGAJATOR:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, cu sediul în %s, CUI %s, reprezentată prin %s, în calitate de administrator",
		orFallback(c.CompanyName, "Denumire Firmă"), orDash(c.Address), orDash(c.CUI),
		orFallback(c.Representative, placeholder("Reprezentant"))))
	pw.Advance(10)

	pw.SetFont("B", bodyFontSize)
	pw.Line("ANGAJAT:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, CNP %s, domiciliat/ă în %s",
		e.Get("employeeName", placeholder("Nume")),
		e.Get("employeeCNP", placeholder("CNP")),
		e.Get("employeeAddress", placeholder("Adresă"))))
	pw.Advance(12)

	articles := []struct{ title, body string }{
		{
			"Art. 1 - OBIECTUL CONTRACTULUI",
			fmt.Sprintf("Angajatul va ocupa funcția de %s în cadrul departamentului %s.",
				e.Get("position", placeholder("Funcție")), e.Get("department", placeholder("Departament"))),
		},
		{
			"Art. 2 - DURATA CONTRACTULUI",
			fmt.Sprintf("Contractul se încheie pe durată nedeterminată, începând cu data de %s.", FormatDateField(e["startDate"])),
		},
		{
			"Art. 3 - LOCUL DE MUNCĂ",
			fmt.Sprintf("Activitatea se va desfășura la sediul angajatorului: %s.", orDash(c.Address)),
		},
		{
			"Art. 4 - DURATA MUNCII",
			fmt.Sprintf("Durata timpului de lucru este de %s, de luni până vineri.", e.Get("workSchedule", "8 ore/zi, 40 ore/săptămână")),
		},
		{
			"Art. 5 - SALARIUL",
			fmt.Sprintf("Salariul de bază lunar brut este de %s RON. Plata se efectuează lunar, în data de 10 a lunii următoare.", e.Get("salary", placeholder("Salariu"))),
		},
		{
			"Art. 6 - CONCEDIUL DE ODIHNĂ",
			"Angajatul beneficiază de un concediu anual de odihnă de minimum 20 zile lucrătoare.",
		},
		{
			"Art. 7 - DREPTURI ȘI OBLIGAȚII",
			"Drepturile și obligațiile părților sunt cele prevăzute în Codul Muncii și în prezentul contract.",
		},
	}
	for _, a := range articles {
		pw.Section(a.title, a.body)
	}

	pw.EnsureSpace(45)
	pw.Advance(15)
	pw.SetFont("B", bodyFontSize)
	pw.TextAt(30, "ANGAJATOR,")
	pw.TextAt(130, "ANGAJAT,")
	pw.Advance(7)
	pw.SetFont("", bodyFontSize)
	pw.TextAt(30, orFallback(c.CompanyName, "_________________"))
	pw.TextAt(130, e.Get("employeeName", "_________________"))
	pw.Advance(7)
	pw.TextAt(30, "Prin: "+orFallback(c.Representative, "_________________"))

	return pw
}

func renderPartTimeContract(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Contract Individual de Muncă cu Timp Parțial", c)

	pw.Paragraph(fmt.Sprintf("Încheiat astăzi, %s, între:", FormatDateField(e["startDate"])))
	pw.Advance(8)

	pw.SetFont("B", bodyFontSize)
	pw.Line("ANGAJATOR:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, cu sediul în %s, CUI %s",
		orFallback(c.CompanyName, "Denumire Firmă"), orDash(c.Address), orDash(c.CUI)))
	pw.Advance(10)

	pw.SetFont("B", bodyFontSize)
	pw.Line("ANGAJAT:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, CNP %s, domiciliat/ă în %s",
		e.Get("employeeName", placeholder("Nume")),
		e.Get("employeeCNP", placeholder("CNP")),
		e.Get("employeeAddress", placeholder("Adresă"))))
	pw.Advance(12)

	hoursPerDay := e.Get("hoursPerDay", "4")
	perWeek := 20
	if h, err := strconv.Atoi(hoursPerDay); err == nil {
		perWeek = h * 5
	}

	articles := []struct{ title, body string }{
		{"Art. 1 - FUNCȚIA", fmt.Sprintf("Angajatul va ocupa funcția de %s.", e.Get("position", placeholder("Funcție")))},
		{"Art. 2 - DURATA", fmt.Sprintf("Contract pe durată nedeterminată, începând cu %s.", FormatDateField(e["startDate"]))},
		{"Art. 3 - PROGRAM", fmt.Sprintf("Durata muncii: %s ore/zi, %d ore/săptămână.", hoursPerDay, perWeek)},
		{"Art. 4 - SALARIU", fmt.Sprintf("Salariul brut lunar: %s RON, proporțional cu timpul lucrat.", e.Get("salary", placeholder("Salariu")))},
		{"Art. 5 - CONCEDIU", "Concediul de odihnă se acordă proporțional cu timpul efectiv lucrat."},
	}
	for _, a := range articles {
		pw.Section(a.title, a.body)
	}

	pw.EnsureSpace(35)
	pw.Advance(15)
	pw.SetFont("B", bodyFontSize)
	pw.TextAt(30, "ANGAJATOR,")
	pw.TextAt(130, "ANGAJAT,")
	pw.Advance(15)
	pw.SignatureLine(30, 80)
	pw.SignatureLine(130, 180)

	return pw
}

func renderRemoteContract(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Contract Individual de Muncă cu Clauză de Telemuncă", c)

	pw.Paragraph(fmt.Sprintf("Încheiat astăzi, %s, între părți, cu următoarele clauze specifice telemuncii:", FormatDateField(e["startDate"])))
	pw.Advance(10)

	articles := []struct{ title, body string }{
		{
			"Art. 1 - PĂRȚILE",
			fmt.Sprintf("Angajator: %s | Angajat: %s, CNP %s",
				orFallback(c.CompanyName, "Denumire Firmă"),
				e.Get("employeeName", placeholder("Nume")),
				e.Get("employeeCNP", placeholder("CNP"))),
		},
		{
			"Art. 2 - FUNCȚIA",
			fmt.Sprintf("%s cu activitate în regim de telemuncă.", e.Get("position", placeholder("Funcție"))),
		},
		{
			"Art. 3 - LOCUL MUNCII",
			fmt.Sprintf("Telemunca se desfășoară la: %s, conform adresei: %s.",
				e.Get("remoteLocation", "domiciliul angajatului"), e.Get("employeeAddress", placeholder("Adresă"))),
		},
		{
			"Art. 4 - PROGRAM",
			"Program flexibil de 8 ore/zi. Angajatul trebuie să fie disponibil între orele 10:00-16:00.",
		},
		{
			"Art. 5 - SALARIU",
			fmt.Sprintf("Salariul brut lunar: %s RON.", e.Get("salary", placeholder("Salariu"))),
		},
		{
			"Art. 6 - ECHIPAMENTE",
			fmt.Sprintf("Angajatorul asigură: %s.", e.Get("equipmentProvided", "laptop, acces VPN, licențe software necesare")),
		},
		{
			"Art. 7 - OBLIGAȚII SPECIFICE",
			"Angajatul se obligă să: asigure confidențialitatea datelor; mențină un spațiu de lucru adecvat; raporteze progresul conform procedurilor interne.",
		},
		{
			"Art. 8 - SECURITATE",
			"Angajatul respectă normele de securitate și sănătate în muncă și pentru telemuncă.",
		},
	}
	for _, a := range articles {
		pw.Section(a.title, a.body)
	}

	pw.EnsureSpace(20)
	pw.Advance(10)
	pw.SetFont("B", bodyFontSize)
	pw.TextAt(30, "ANGAJATOR,")
	pw.TextAt(130, "ANGAJAT,")

	return pw
}

func renderJobDescription(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Fișa Postului", c)

	pairs := []struct{ label, value string }{
		{"Denumirea postului:", e.Get("position", placeholder("Denumire"))},
		{"Departament:", e.Get("department", placeholder("Departament"))},
		{"Superior ierarhic:", e.Get("supervisor", placeholder("Superior"))},
	}
	for _, p := range pairs {
		pw.SetFont("B", bodyFontSize)
		pw.TextAt(20, p.label)
		pw.SetFont("", bodyFontSize)
		pw.TextAt(80, p.value)
		pw.Advance(8)
	}

	pw.Advance(10)
	pw.SetFont("B", bodyFontSize)
	pw.Line("RESPONSABILITĂȚI PRINCIPALE:")
	pw.Advance(1)
	pw.SetFont("", bodyFontSize)
	for _, r := range strings.Split(e.Get("responsibilities", "- Responsabilitate 1\n- Responsabilitate 2"), "\n") {
		pw.ParagraphAt(r, 25, 165)
		pw.Advance(3)
	}

	pw.Advance(10)
	pw.EnsureSpace(20)
	pw.SetFont("B", bodyFontSize)
	pw.Line("CERINȚE POST:")
	pw.Advance(1)
	pw.SetFont("", bodyFontSize)
	for _, r := range strings.Split(e.Get("requirements", "- Cerință 1\n- Cerință 2"), "\n") {
		pw.ParagraphAt(r, 25, 165)
		pw.Advance(3)
	}

	pw.Advance(17)
	pw.EnsureSpace(40)
	pw.Line("Data întocmirii: " + FormatDate(time.Now()))
	pw.Advance(9)
	pw.SetFont("B", bodyFontSize)
	pw.Line("Am luat la cunoștință,")
	pw.Advance(9)
	pw.SignatureLine(20, 80)

	return pw
}
