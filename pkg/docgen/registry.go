package docgen

// renderFunc lays a document out onto a fresh PageWriter. Render functions
// are pure: same inputs, same pages.
type renderFunc func(c CompanyData, e ExtraData) *PageWriter

type definition struct {
	Template
	render renderFunc
}

// Registry is the closed set of document definitions, built once at startup.
// A definition carries both the field schema and the render function, so an
// identifier cannot exist in one table and be missing from the other.
type Registry struct {
	defs  map[DocumentType]definition
	order []DocumentType
}

func NewRegistry() *Registry {
	r := &Registry{defs: make(map[DocumentType]definition)}

	r.register(privacyPolicyTemplate(), renderPrivacyPolicy)
	r.register(dataRegistryTemplate(), renderDataRegistry)
	r.register(dataProcessingTemplate(), renderDataProcessingAgreement)
	r.register(employeeConsentTemplate(), renderEmployeeConsent)
	r.register(fullTimeContractTemplate(), renderFullTimeContract)
	r.register(partTimeContractTemplate(), renderPartTimeContract)
	r.register(remoteContractTemplate(), renderRemoteContract)
	r.register(jobDescriptionTemplate(), renderJobDescription)
	r.register(invoiceTemplate(), renderInvoice)
	r.register(serviceContractTemplate(), renderServiceContract)
	r.register(selfDeclarationTemplate(), renderSelfDeclaration)

	return r
}

func (r *Registry) register(t Template, render renderFunc) {
	r.defs[t.Type] = definition{Template: t, render: render}
	r.order = append(r.order, t.Type)
}

// Templates lists every template in registration order, for the catalog.
func (r *Registry) Templates() []Template {
	out := make([]Template, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.defs[t].Template)
	}
	return out
}

// Template returns the field schema for a document type.
func (r *Registry) Template(t DocumentType) (Template, bool) {
	def, ok := r.defs[t]
	return def.Template, ok
}

// Generate renders and serializes the document for the given type. An
// unregistered type returns ErrUnknownType; no document is produced.
func (r *Registry) Generate(t DocumentType, c CompanyData, e ExtraData) (*Document, error) {
	def, ok := r.defs[t]
	if !ok {
		return nil, ErrUnknownType
	}

	pw := def.render(c, e)
	pages := pw.PageCount()
	text := pw.Text()

	data, err := pw.Output()
	if err != nil {
		return nil, err
	}

	return &Document{
		Type:  t,
		Name:  def.Name,
		data:  data,
		text:  text,
		pages: pages,
	}, nil
}
