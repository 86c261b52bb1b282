package docgen

// DocumentType selects which legal document template applies.
type DocumentType string

const (
	TypePrivacyPolicy      DocumentType = "privacy-policy"
	TypeDataRegistry       DocumentType = "data-registry"
	TypeDataProcessing     DocumentType = "data-processing-agreement"
	TypeEmployeeConsent    DocumentType = "employee-gdpr-consent"
	TypeFullTimeContract   DocumentType = "cim-full-time"
	TypePartTimeContract   DocumentType = "cim-part-time"
	TypeRemoteContract     DocumentType = "cim-remote"
	TypeJobDescription     DocumentType = "job-description"
	TypeInvoice            DocumentType = "invoice"
	TypeServiceContract    DocumentType = "service-contract"
	TypeSelfDeclaration    DocumentType = "self-declaration"
)

// Category is the coarse grouping shown in the document catalog.
type Category string

const (
	CategoryGDPR      Category = "gdpr"
	CategoryContracts Category = "contracts"
	CategoryFiscal    Category = "fiscal"
)

// FieldType tags the input widget a field needs.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
)

// Field describes one input slot of a document type. Field sets are fixed
// per type and never mutate at runtime.
type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Required    bool
	Placeholder string
	Options     []string
}

// Template is the describable half of a document definition: identifier,
// display name, category and ordered field list.
type Template struct {
	Type     DocumentType
	Name     string
	Category Category
	Fields   []Field
}

func privacyPolicyTemplate() Template {
	return Template{
		Type:     TypePrivacyPolicy,
		Name:     "Politică de Confidențialitate",
		Category: CategoryGDPR,
		Fields: []Field{
			{Name: "websiteUrl", Label: "Website", Type: FieldText, Placeholder: "www.exemplu.ro"},
			{Name: "dataTypes", Label: "Tipuri de date colectate", Type: FieldTextarea, Placeholder: "nume, email, telefon..."},
			{Name: "dataProcessingPurpose", Label: "Scopul prelucrării datelor", Type: FieldTextarea, Placeholder: "marketing, facturare..."},
		},
	}
}

func dataRegistryTemplate() Template {
	return Template{
		Type:     TypeDataRegistry,
		Name:     "Registru Prelucrare Date",
		Category: CategoryGDPR,
		Fields: []Field{
			{Name: "dataCategories", Label: "Categorii de date", Type: FieldTextarea, Placeholder: "date identificare, date contact..."},
			{Name: "retentionPeriod", Label: "Perioada de retenție", Type: FieldText, Placeholder: "5 ani"},
		},
	}
}

func dataProcessingTemplate() Template {
	return Template{
		Type:     TypeDataProcessing,
		Name:     "Contract Procesare Date",
		Category: CategoryGDPR,
		Fields: []Field{
			{Name: "processorName", Label: "Nume împuternicit", Type: FieldText, Required: true, Placeholder: "SC Procesator SRL"},
			{Name: "processorCui", Label: "CUI împuternicit", Type: FieldText, Required: true, Placeholder: "RO12345678"},
			{Name: "processorAddress", Label: "Adresă împuternicit", Type: FieldText, Required: true, Placeholder: "Str. Exemplu, Nr. 1"},
			{Name: "dataTypes", Label: "Tipuri de date procesate", Type: FieldTextarea, Placeholder: "date clienți, date angajați..."},
		},
	}
}

func employeeConsentTemplate() Template {
	return Template{
		Type:     TypeEmployeeConsent,
		Name:     "Acord Prelucrare Angajați",
		Category: CategoryGDPR,
		Fields: []Field{
			{Name: "employeeName", Label: "Nume angajat", Type: FieldText, Required: true, Placeholder: "Ion Popescu"},
			{Name: "employeeCNP", Label: "CNP angajat", Type: FieldText, Required: true, Placeholder: "1234567890123"},
		},
	}
}

func fullTimeContractTemplate() Template {
	return Template{
		Type:     TypeFullTimeContract,
		Name:     "CIM Full-Time",
		Category: CategoryContracts,
		Fields: []Field{
			{Name: "employeeName", Label: "Nume angajat", Type: FieldText, Required: true, Placeholder: "Ion Popescu"},
			{Name: "employeeCNP", Label: "CNP angajat", Type: FieldText, Required: true, Placeholder: "1234567890123"},
			{Name: "employeeAddress", Label: "Adresă angajat", Type: FieldText, Required: true, Placeholder: "Str. Exemplu, Nr. 1"},
			{Name: "position", Label: "Funcția", Type: FieldText, Required: true, Placeholder: "Programator"},
			{Name: "department", Label: "Departament", Type: FieldText, Placeholder: "IT"},
			{Name: "salary", Label: "Salariu brut (RON)", Type: FieldNumber, Required: true, Placeholder: "5000"},
			{Name: "startDate", Label: "Data începere", Type: FieldDate, Required: true},
			{Name: "workSchedule", Label: "Program lucru", Type: FieldSelect, Required: true, Options: []string{"8 ore/zi, 40 ore/săptămână", "Flexibil", "Ture"}},
		},
	}
}

func partTimeContractTemplate() Template {
	return Template{
		Type:     TypePartTimeContract,
		Name:     "CIM Part-Time",
		Category: CategoryContracts,
		Fields: []Field{
			{Name: "employeeName", Label: "Nume angajat", Type: FieldText, Required: true, Placeholder: "Ion Popescu"},
			{Name: "employeeCNP", Label: "CNP angajat", Type: FieldText, Required: true, Placeholder: "1234567890123"},
			{Name: "employeeAddress", Label: "Adresă angajat", Type: FieldText, Required: true, Placeholder: "Str. Exemplu, Nr. 1"},
			{Name: "position", Label: "Funcția", Type: FieldText, Required: true, Placeholder: "Programator"},
			{Name: "hoursPerDay", Label: "Ore/zi", Type: FieldNumber, Required: true, Placeholder: "4"},
			{Name: "salary", Label: "Salariu brut (RON)", Type: FieldNumber, Required: true, Placeholder: "2500"},
			{Name: "startDate", Label: "Data începere", Type: FieldDate, Required: true},
		},
	}
}

func remoteContractTemplate() Template {
	return Template{
		Type:     TypeRemoteContract,
		Name:     "CIM Remote/Telemuncă",
		Category: CategoryContracts,
		Fields: []Field{
			{Name: "employeeName", Label: "Nume angajat", Type: FieldText, Required: true, Placeholder: "Ion Popescu"},
			{Name: "employeeCNP", Label: "CNP angajat", Type: FieldText, Required: true, Placeholder: "1234567890123"},
			{Name: "employeeAddress", Label: "Adresă angajat", Type: FieldText, Required: true, Placeholder: "Str. Exemplu, Nr. 1"},
			{Name: "remoteLocation", Label: "Locația telemuncii", Type: FieldText, Required: true, Placeholder: "Domiciliu"},
			{Name: "position", Label: "Funcția", Type: FieldText, Required: true, Placeholder: "Programator"},
			{Name: "salary", Label: "Salariu brut (RON)", Type: FieldNumber, Required: true, Placeholder: "5000"},
			{Name: "startDate", Label: "Data începere", Type: FieldDate, Required: true},
			{Name: "equipmentProvided", Label: "Echipamente furnizate", Type: FieldTextarea, Placeholder: "Laptop, monitor..."},
		},
	}
}

func jobDescriptionTemplate() Template {
	return Template{
		Type:     TypeJobDescription,
		Name:     "Fișa Postului",
		Category: CategoryContracts,
		Fields: []Field{
			{Name: "position", Label: "Denumire post", Type: FieldText, Required: true, Placeholder: "Programator Senior"},
			{Name: "department", Label: "Departament", Type: FieldText, Required: true, Placeholder: "IT"},
			{Name: "supervisor", Label: "Superior ierarhic", Type: FieldText, Required: true, Placeholder: "Director IT"},
			{Name: "responsibilities", Label: "Responsabilități principale", Type: FieldTextarea, Required: true, Placeholder: "- Dezvoltare software\n- Mentenanță sisteme..."},
			{Name: "requirements", Label: "Cerințe post", Type: FieldTextarea, Required: true, Placeholder: "- Studii superioare\n- 3 ani experiență..."},
		},
	}
}

func invoiceTemplate() Template {
	return Template{
		Type:     TypeInvoice,
		Name:     "Model Factură",
		Category: CategoryFiscal,
		Fields: []Field{
			{Name: "clientName", Label: "Nume client", Type: FieldText, Required: true, Placeholder: "SC Client SRL"},
			{Name: "clientCui", Label: "CUI client", Type: FieldText, Required: true, Placeholder: "RO12345678"},
			{Name: "clientAddress", Label: "Adresă client", Type: FieldText, Required: true, Placeholder: "Str. Client, Nr. 1"},
			{Name: "invoiceNumber", Label: "Număr factură", Type: FieldText, Required: true, Placeholder: "001"},
			{Name: "invoiceDate", Label: "Data facturii", Type: FieldDate, Required: true},
			{Name: "services", Label: "Servicii/Produse", Type: FieldTextarea, Required: true, Placeholder: "Servicii consultanță - 1000 RON"},
			{Name: "totalAmount", Label: "Total (RON)", Type: FieldNumber, Required: true, Placeholder: "1000"},
		},
	}
}

func serviceContractTemplate() Template {
	return Template{
		Type:     TypeServiceContract,
		Name:     "Contract Prestări Servicii",
		Category: CategoryFiscal,
		Fields: []Field{
			{Name: "providerName", Label: "Nume prestator", Type: FieldText, Required: true, Placeholder: "PFA Ion Popescu"},
			{Name: "providerCui", Label: "CUI prestator", Type: FieldText, Required: true, Placeholder: "12345678"},
			{Name: "providerAddress", Label: "Adresă prestator", Type: FieldText, Required: true, Placeholder: "Str. Exemplu, Nr. 1"},
			{Name: "serviceDescription", Label: "Descriere servicii", Type: FieldTextarea, Required: true, Placeholder: "Servicii de programare și dezvoltare software"},
			{Name: "contractValue", Label: "Valoare contract (RON)", Type: FieldNumber, Required: true, Placeholder: "5000"},
			{Name: "startDate", Label: "Data începere", Type: FieldDate, Required: true},
			{Name: "endDate", Label: "Data încheiere", Type: FieldDate},
		},
	}
}

func selfDeclarationTemplate() Template {
	return Template{
		Type:     TypeSelfDeclaration,
		Name:     "Declarație pe Proprie Răspundere",
		Category: CategoryFiscal,
		Fields: []Field{
			{Name: "declarantName", Label: "Nume declarant", Type: FieldText, Required: true, Placeholder: "Ion Popescu"},
			{Name: "declarantCNP", Label: "CNP declarant", Type: FieldText, Required: true, Placeholder: "1234567890123"},
			{Name: "declarantAddress", Label: "Adresă declarant", Type: FieldText, Required: true, Placeholder: "Str. Exemplu, Nr. 1"},
			{Name: "declarationContent", Label: "Conținut declarație", Type: FieldTextarea, Required: true, Placeholder: "Declar pe proprie răspundere că..."},
		},
	}
}
