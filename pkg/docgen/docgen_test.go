package docgen

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistryCatalog(t *testing.T) {
	r := NewRegistry()

	templates := r.Templates()
	if len(templates) != 11 {
		t.Fatalf("catalog size = %d, want 11", len(templates))
	}

	seen := make(map[DocumentType]bool)
	for _, tmpl := range templates {
		if tmpl.Type == "" || tmpl.Name == "" || tmpl.Category == "" {
			t.Errorf("template %q missing identity fields: %+v", tmpl.Type, tmpl)
		}
		if seen[tmpl.Type] {
			t.Errorf("duplicate template type %q", tmpl.Type)
		}
		seen[tmpl.Type] = true
	}

	if templates[0].Type != TypePrivacyPolicy {
		t.Errorf("first template = %q, want %q", templates[0].Type, TypePrivacyPolicy)
	}

	if _, ok := r.Template(TypeInvoice); !ok {
		t.Error("Template(invoice) not found")
	}
	if _, ok := r.Template("no-such-type"); ok {
		t.Error("Template(no-such-type) unexpectedly found")
	}
}

func TestGenerateUnknownType(t *testing.T) {
	r := NewRegistry()

	doc, err := r.Generate("no-such-type", CompanyData{}, nil)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	if doc != nil {
		t.Fatal("document returned alongside error")
	}
}

func TestGenerateInterpolatesFields(t *testing.T) {
	company := CompanyData{
		CompanyName:    "Demo Digital SRL",
		CUI:            "RO12345678",
		Address:        "Str. Exemplu nr. 10",
		Representative: "Ion Popescu",
	}

	tests := []struct {
		name     string
		docType  DocumentType
		extra    ExtraData
		wantText []string
	}{
		{
			name:    "invoice carries client and total",
			docType: TypeInvoice,
			extra: ExtraData{
				"clientName":    "SC Client SRL",
				"clientCui":     "RO87654321",
				"invoiceNumber": "042",
				"totalAmount":   "1234",
			},
			wantText: []string{"SC Client SRL", "RO87654321", "Nr. 042", "TOTAL: 1234 RON", "Demo Digital SRL"},
		},
		{
			name:    "service contract without end date runs until completion",
			docType: TypeServiceContract,
			extra: ExtraData{
				"providerName":  "PFA Maria Ionescu",
				"contractValue": "5000",
			},
			wantText: []string{"PFA Maria Ionescu", "5000 RON", "finalizarea serviciilor"},
		},
		{
			name:    "full time contract carries employee and salary",
			docType: TypeFullTimeContract,
			extra: ExtraData{
				"employeeName": "Andrei Georgescu",
				"position":     "Programator",
				"salary":       "7200",
			},
			wantText: []string{"Andrei Georgescu", "Programator", "7200 RON"},
		},
		{
			name:    "self declaration carries declarant and content",
			docType: TypeSelfDeclaration,
			extra: ExtraData{
				"declarantName":      "Elena Marin",
				"declarationContent": "nu am datorii la bugetul de stat",
			},
			wantText: []string{"Elena Marin", "nu am datorii la bugetul de stat", "art. 326"},
		},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := r.Generate(tt.docType, company, tt.extra)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(doc.Bytes()) == 0 {
				t.Fatal("empty pdf output")
			}
			text := doc.Text()
			for _, want := range tt.wantText {
				if !strings.Contains(text, want) {
					t.Errorf("transcript missing %q", want)
				}
			}
		})
	}
}

func TestGenerateAbsentFieldsRenderPlaceholders(t *testing.T) {
	r := NewRegistry()

	doc, err := r.Generate(TypeInvoice, CompanyData{}, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	text := doc.Text()
	for _, want := range []string{"[Nume Client]", "[Nume Furnizor]", "TOTAL: 0 RON"} {
		if !strings.Contains(text, want) {
			t.Errorf("transcript missing %q", want)
		}
	}
	if strings.Contains(text, "CUI: \n") {
		t.Error("absent field rendered as silent blank")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	r := NewRegistry()
	company := CompanyData{CompanyName: "Demo Digital SRL", CUI: "RO12345678"}
	extra := ExtraData{"employeeName": "Ion Popescu", "salary": "5000"}

	first, err := r.Generate(TypeFullTimeContract, company, extra)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := r.Generate(TypeFullTimeContract, company, extra)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	if first.Text() != second.Text() {
		t.Error("transcripts differ between identical runs")
	}
	if first.PageCount() != second.PageCount() {
		t.Errorf("page counts differ: %d vs %d", first.PageCount(), second.PageCount())
	}
}

func TestPaginationKeepsTextAboveBreakThreshold(t *testing.T) {
	r := NewRegistry()

	// Enough content to force several page breaks.
	longContent := strings.TrimSpace(strings.Repeat("Declar că toate informațiile furnizate sunt corecte și complete.\n", 80))

	doc := mustRender(t, r, TypeSelfDeclaration, ExtraData{"declarationContent": longContent})
	if doc.PageCount() < 2 {
		t.Fatalf("page count = %d, want multi-page output", doc.PageCount())
	}

	for _, tmpl := range r.Templates() {
		pw := mustRenderWriter(t, r, tmpl.Type, ExtraData{"declarationContent": longContent, "services": longContent})
		for _, line := range pw.Transcript() {
			if line.Y > breakThreshold+lineHeight {
				t.Errorf("%s: line %q written at y=%.1f on page %d, past the break threshold", tmpl.Type, line.Text, line.Y, line.Page)
			}
		}
	}
}

func TestSectionTitlesNotOrphaned(t *testing.T) {
	r := NewRegistry()

	longService := strings.TrimSpace(strings.Repeat("Servicii de consultanță și dezvoltare software la cerere.\n", 40))
	pw := mustRenderWriter(t, r, TypeServiceContract, ExtraData{"serviceDescription": longService})

	lines := pw.Transcript()
	for i, line := range lines {
		if !strings.HasPrefix(line.Text, "Art.") {
			continue
		}
		if i+1 >= len(lines) {
			t.Errorf("section title %q is the final line of the document", line.Text)
			continue
		}
		if lines[i+1].Page != line.Page {
			t.Errorf("section title %q orphaned at the bottom of page %d", line.Text, line.Page)
		}
	}
}

func mustRender(t *testing.T, r *Registry, dt DocumentType, e ExtraData) *Document {
	t.Helper()
	doc, err := r.Generate(dt, CompanyData{CompanyName: "Demo Digital SRL"}, e)
	if err != nil {
		t.Fatalf("Generate(%s): %v", dt, err)
	}
	return doc
}

func mustRenderWriter(t *testing.T, r *Registry, dt DocumentType, e ExtraData) *PageWriter {
	t.Helper()
	def, ok := r.defs[dt]
	if !ok {
		t.Fatalf("unknown type %s", dt)
	}
	return def.render(CompanyData{CompanyName: "Demo Digital SRL"}, e)
}
