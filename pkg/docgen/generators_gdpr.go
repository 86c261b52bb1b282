package docgen

import (
	"fmt"
	"strings"
	"time"
)

func renderPrivacyPolicy(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Politica de Confidențialitate", c)

	sections := []struct{ title, body string }{
		{
			"1. INTRODUCERE",
			fmt.Sprintf("%s (denumită în continuare „Operatorul”), cu sediul în %s, CUI %s, se angajează să protejeze confidențialitatea datelor dumneavoastră personale în conformitate cu Regulamentul (UE) 2016/679 (GDPR).",
				orFallback(c.CompanyName, "Denumire Firmă"), orDash(c.Address), orDash(c.CUI)),
		},
		{
			"2. DATE COLECTATE",
			"Colectăm următoarele categorii de date personale: " + e.Get("dataTypes", "nume, prenume, adresă de email, număr de telefon, adresă poștală") + ".",
		},
		{
			"3. SCOPUL PRELUCRĂRII",
			"Datele personale sunt prelucrate în următoarele scopuri: " + e.Get("dataProcessingPurpose", "furnizarea serviciilor, comunicări comerciale, îmbunătățirea serviciilor, conformare legală") + ".",
		},
		{
			"4. BAZA LEGALĂ",
			"Prelucrarea datelor se efectuează în baza: consimțământului dumneavoastră, executării unui contract, obligațiilor legale ale operatorului, sau intereselor legitime ale operatorului.",
		},
		{
			"5. PERIOADA DE PĂSTRARE",
			"Datele personale vor fi păstrate pe perioada necesară îndeplinirii scopurilor pentru care au fost colectate, dar nu mai mult de 5 ani de la ultima interacțiune.",
		},
		{
			"6. DREPTURILE DUMNEAVOASTRĂ",
			"Aveți dreptul de: acces la datele personale, rectificare, ștergere (dreptul de a fi uitat), restricționarea prelucrării, portabilitatea datelor, opoziție la prelucrare, retragerea consimțământului.",
		},
		{
			"7. CONTACT",
			fmt.Sprintf("Pentru exercitarea drepturilor sau orice întrebări, ne puteți contacta la: %s sau la adresa: %s.",
				orFallback(c.Email, "[email]"), orDash(c.Address)),
		},
	}
	for _, s := range sections {
		pw.Section(s.title, s.body)
	}

	pw.Advance(10)
	pw.EnsureSpace(30)
	pw.SetFont("B", bodyFontSize)
	pw.Line("Data intrării în vigoare: " + FormatDate(time.Now()))
	pw.Advance(9)
	pw.Line("Reprezentant legal,")
	pw.Advance(1)
	pw.SetFont("", bodyFontSize)
	pw.Line(orFallback(c.Representative, "_________________"))

	return pw
}

func renderDataRegistry(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Registrul Activităților de Prelucrare", c)

	pw.SetFont("B", bodyFontSize)
	pw.TextAt(20, "Nr.")
	pw.TextAt(35, "Categorie date")
	pw.TextAt(90, "Scop prelucrare")
	pw.TextAt(150, "Termen păstrare")
	pw.Advance(5)
	pw.Rule(20, 190, pw.Y())
	pw.Advance(7)

	pw.SetFont("", bodyFontSize)
	retention := e.Get("retentionPeriod", "5 ani")
	categories := strings.Split(e.Get("dataCategories", "Date identificare, Date contact, Date contractuale"), ",")
	for i, cat := range categories {
		pw.EnsureSpace(8)
		pw.TextAt(20, fmt.Sprintf("%d.", i+1))
		pw.TextAt(35, strings.TrimSpace(cat))
		pw.TextAt(90, "Executare contract")
		pw.TextAt(150, retention)
		pw.Advance(8)
	}

	pw.Advance(12)
	pw.EnsureSpace(40)
	pw.SetFont("B", bodyFontSize)
	pw.Line("Măsuri de securitate implementate:")
	pw.Advance(1)
	pw.SetFont("", bodyFontSize)
	measures := []string{
		"- Acces restricționat la datele personale",
		"- Criptare date sensibile",
		"- Backup periodic",
		"- Instruire personal privind GDPR",
	}
	for _, m := range measures {
		pw.TextAt(25, m)
		pw.Advance(6)
	}

	pw.Advance(9)
	pw.SetFont("B", bodyFontSize)
	pw.Line("Data întocmirii: " + FormatDate(time.Now()))
	pw.Advance(9)
	pw.Line("Întocmit de,")
	pw.Advance(1)
	pw.SetFont("", bodyFontSize)
	pw.Line(orFallback(c.Representative, "_________________"))

	return pw
}

func renderDataProcessingAgreement(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Contract de Prelucrare a Datelor cu Caracter Personal", c)

	pw.Paragraph(fmt.Sprintf("Încheiat astăzi, %s, între:", FormatDate(time.Now())))
	pw.Advance(8)

	pw.SetFont("B", bodyFontSize)
	pw.Line("OPERATOR:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, cu sediul în %s, CUI %s, reprezentată prin %s",
		orFallback(c.CompanyName, "Denumire Firmă"), orDash(c.Address), orDash(c.CUI),
		orFallback(c.Representative, placeholder("Reprezentant"))))
	pw.Advance(10)

	pw.SetFont("B", bodyFontSize)
	pw.Line("ÎMPUTERNICIT:")
	pw.SetFont("", bodyFontSize)
	pw.Paragraph(fmt.Sprintf("%s, cu sediul în %s, CUI %s",
		e.Get("processorName", placeholder("Nume împuternicit")),
		e.Get("processorAddress", placeholder("Adresă")),
		e.Get("processorCui", placeholder("CUI"))))
	pw.Advance(12)

	clauses := []struct{ title, body string }{
		{
			"Art. 1 - OBIECTUL CONTRACTULUI",
			"Împuternicitul va prelucra, în numele Operatorului, următoarele categorii de date: " + e.Get("dataTypes", "date personale ale clienților și angajaților") + ".",
		},
		{
			"Art. 2 - OBLIGAȚIILE ÎMPUTERNICITULUI",
			"Împuternicitul se obligă să: prelucreze datele doar conform instrucțiunilor Operatorului; asigure confidențialitatea; implementeze măsuri de securitate adecvate; notifice incidentele de securitate în 24 ore.",
		},
		{
			"Art. 3 - DURATA",
			"Prezentul contract este valabil pe durata relației contractuale dintre părți.",
		},
		{
			"Art. 4 - ÎNCETARE",
			"La încetarea contractului, Împuternicitul va returna sau șterge toate datele personale, la alegerea Operatorului.",
		},
	}
	for _, cl := range clauses {
		pw.Section(cl.title, cl.body)
	}

	pw.Advance(10)
	pw.EnsureSpace(30)
	pw.SetFont("B", bodyFontSize)
	pw.TextAt(30, "OPERATOR,")
	pw.TextAt(130, "ÎMPUTERNICIT,")
	pw.Advance(15)
	pw.SetFont("", bodyFontSize)
	pw.TextAt(30, orFallback(c.Representative, "_________________"))
	pw.TextAt(130, e.Get("processorName", "_________________"))

	return pw
}

func renderEmployeeConsent(c CompanyData, e ExtraData) *PageWriter {
	pw := NewPageWriter()
	pw.Header("Acord de Prelucrare a Datelor Personale - Angajat", c)

	pw.Paragraph(fmt.Sprintf("Subsemnatul/a %s, CNP %s, angajat/ă al %s, declar că:",
		e.Get("employeeName", placeholder("Nume Angajat")),
		e.Get("employeeCNP", placeholder("CNP")),
		orFallback(c.CompanyName, "Denumire Firmă")))
	pw.Advance(12)

	declarations := []string{
		"1. Am fost informat/ă despre prelucrarea datelor mele personale de către angajator în scopul executării contractului de muncă, îndeplinirii obligațiilor legale și intereselor legitime ale angajatorului.",
		"2. Am luat cunoștință despre categoriile de date prelucrate: date de identificare, date de contact, date profesionale, date financiare.",
		"3. Am fost informat/ă despre drepturile mele conform GDPR: dreptul de acces, rectificare, ștergere, restricționare, portabilitate și opoziție.",
		"4. Înțeleg că pot retrage consimțământul în orice moment, fără a afecta legalitatea prelucrării anterioare.",
		"5. Am primit o copie a Politicii de Confidențialitate a angajatorului.",
	}
	for _, d := range declarations {
		pw.EnsureSpace(20)
		pw.Paragraph(d)
		pw.Advance(8)
	}

	pw.Advance(7)
	pw.EnsureSpace(40)
	pw.Line("Data: " + FormatDate(time.Now()))
	pw.Advance(14)

	pw.SetFont("B", bodyFontSize)
	pw.TextAt(20, "Semnătura angajat:")
	pw.TextAt(110, "Semnătura angajator:")
	pw.Advance(15)
	pw.SignatureLine(20, 80)
	pw.SignatureLine(110, 170)

	return pw
}
