// Package docgen generates the legal document PDFs offered by the product:
// GDPR paperwork, labor contracts and fiscal documents, each rendered from a
// fixed Romanian template with field interpolation.
package docgen

import "errors"

// ErrUnknownType is returned when a document type id has no registered
// definition. Callers must surface it and must not try to save a result.
var ErrUnknownType = errors.New("unknown document type")

// CompanyData is the denormalized snapshot of the issuing business stamped
// on every document. It is supplied fresh per generation call and never
// persisted by this package.
type CompanyData struct {
	CompanyName        string
	CUI                string
	RegistrationNumber string
	Address            string
	Employees          string
	Representative     string
	Email              string
	Phone              string
}

// ExtraData maps field keys to the free-text values the user filled in.
// Absent keys render as placeholders, never as silent blanks.
type ExtraData map[string]string

// Get returns the value for key, or fallback when absent or empty.
func (e ExtraData) Get(key, fallback string) string {
	if v, ok := e[key]; ok && v != "" {
		return v
	}
	return fallback
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// placeholder renders a bracketed field hint, e.g. "[Reprezentant]".
func placeholder(label string) string {
	return "[" + label + "]"
}

// Document is a finished generation result: the serialized PDF plus the
// plain-text transcript and page count. It has no identity and is discarded
// after download, preview or save.
type Document struct {
	Type  DocumentType
	Name  string
	data  []byte
	text  string
	pages int
}

func (d *Document) Bytes() []byte  { return d.data }
func (d *Document) Text() string   { return d.text }
func (d *Document) PageCount() int { return d.pages }
