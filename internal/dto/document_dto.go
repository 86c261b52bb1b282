package dto

import (
	"time"

	"github.com/google/uuid"
)

type TemplateFieldResponse struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type TemplateResponse struct {
	Id       string                  `json:"id"`
	Name     string                  `json:"name"`
	Category string                  `json:"category"`
	Fields   []TemplateFieldResponse `json:"fields"`
}

type GenerateDocumentRequest struct {
	DocumentType string            `json:"document_type" validate:"required"`
	ExtraData    map[string]string `json:"extra_data"`
}

type SavedDocumentResponse struct {
	Id           uuid.UUID `json:"id"`
	DocumentType string    `json:"document_type"`
	DocumentName string    `json:"document_name"`
	PageCount    int       `json:"page_count"`
	Excerpt      string    `json:"excerpt,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
