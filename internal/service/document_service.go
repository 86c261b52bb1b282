// FILE: internal/service/document_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/pkg/logger"
	"compliancebot-be/internal/repository/specification"
	"compliancebot-be/internal/repository/unitofwork"
	"compliancebot-be/pkg/docgen"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

var ErrDocumentNotFound = errors.New("document not found")

const (
	templateCacheKey = "document:templates"
	excerptMaxLen    = 300
)

type GeneratedDocument struct {
	FileName string
	Data     []byte
}

type IDocumentService interface {
	GetTemplates(ctx context.Context) []*dto.TemplateResponse
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*GeneratedDocument, error)
	Save(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*dto.SavedDocumentResponse, error)
	ListSaved(ctx context.Context, userId uuid.UUID) ([]*dto.SavedDocumentResponse, error)
	DownloadSaved(ctx context.Context, userId, docId uuid.UUID) (*GeneratedDocument, error)
	DeleteSaved(ctx context.Context, userId, docId uuid.UUID) error
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
	registry   *docgen.Registry
	cache      *gocache.Cache
	log        logger.ILogger
	uploadDir  string
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	registry *docgen.Registry,
	cache *gocache.Cache,
	log logger.ILogger,
	uploadDir string,
) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
		registry:   registry,
		cache:      cache,
		log:        log,
		uploadDir:  uploadDir,
	}
}

func (s *documentService) GetTemplates(ctx context.Context) []*dto.TemplateResponse {
	if cached, found := s.cache.Get(templateCacheKey); found {
		return cached.([]*dto.TemplateResponse)
	}

	templates := s.registry.Templates()
	result := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		fields := make([]dto.TemplateFieldResponse, 0, len(t.Fields))
		for _, f := range t.Fields {
			fields = append(fields, dto.TemplateFieldResponse{
				Name:        f.Name,
				Label:       f.Label,
				Type:        string(f.Type),
				Required:    f.Required,
				Placeholder: f.Placeholder,
				Options:     f.Options,
			})
		}
		result = append(result, &dto.TemplateResponse{
			Id:       string(t.Type),
			Name:     t.Name,
			Category: string(t.Category),
			Fields:   fields,
		})
	}

	s.cache.Set(templateCacheKey, result, gocache.DefaultExpiration)
	return result
}

func (s *documentService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*GeneratedDocument, error) {
	doc, err := s.generate(ctx, userId, req)
	if err != nil {
		return nil, err
	}

	return &GeneratedDocument{
		FileName: docgen.DownloadFilename(doc.Name, time.Now()),
		Data:     doc.Bytes(),
	}, nil
}

func (s *documentService) Save(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*dto.SavedDocumentResponse, error) {
	doc, err := s.generate(ctx, userId, req)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	saved := entity.SavedDocument{
		Id:           uuid.New(),
		UserId:       userId,
		DocumentType: string(doc.Type),
		DocumentName: doc.Name,
		PageCount:    doc.PageCount(),
		Excerpt:      excerpt(doc.Text()),
		CreatedAt:    time.Now(),
	}
	saved.FilePath = filepath.Join(s.uploadDir, saved.Id.String()+".pdf")

	if err := os.WriteFile(saved.FilePath, doc.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SavedDocumentRepository().Create(ctx, &saved); err != nil {
		// Do not leave an orphan file behind.
		if rmErr := os.Remove(saved.FilePath); rmErr != nil {
			s.log.Warn("document", "failed to remove orphan file", map[string]interface{}{"path": saved.FilePath})
		}
		return nil, err
	}

	return toSavedDocumentResponse(&saved), nil
}

func (s *documentService) ListSaved(ctx context.Context, userId uuid.UUID) ([]*dto.SavedDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.SavedDocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SavedDocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, toSavedDocumentResponse(d))
	}
	return result, nil
}

func (s *documentService) DownloadSaved(ctx context.Context, userId, docId uuid.UUID) (*GeneratedDocument, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.SavedDocumentRepository().FindOne(ctx,
		specification.ByID{ID: docId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	return &GeneratedDocument{
		FileName: docgen.DownloadFilename(doc.DocumentName, doc.CreatedAt),
		Data:     data,
	}, nil
}

func (s *documentService) DeleteSaved(ctx context.Context, userId, docId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.SavedDocumentRepository().FindOne(ctx,
		specification.ByID{ID: docId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	if err := uow.SavedDocumentRepository().Delete(ctx, docId); err != nil {
		return err
	}

	if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
		s.log.Warn("document", "failed to remove file of deleted document", map[string]interface{}{"path": doc.FilePath})
	}
	return nil
}

func (s *documentService) generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*docgen.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.CompanyProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	var company docgen.CompanyData
	if profile != nil {
		company = docgen.CompanyData{
			CompanyName:        profile.CompanyName,
			CUI:                profile.CUI,
			RegistrationNumber: profile.RegistrationNumber,
			Address:            profile.Address,
			Employees:          profile.Employees,
			Representative:     profile.Representative,
			Email:              profile.Email,
			Phone:              profile.Phone,
		}
	}

	return s.registry.Generate(docgen.DocumentType(req.DocumentType), company, req.ExtraData)
}

func toSavedDocumentResponse(d *entity.SavedDocument) *dto.SavedDocumentResponse {
	return &dto.SavedDocumentResponse{
		Id:           d.Id,
		DocumentType: d.DocumentType,
		DocumentName: d.DocumentName,
		PageCount:    d.PageCount,
		Excerpt:      d.Excerpt,
		CreatedAt:    d.CreatedAt,
	}
}

func excerpt(text string) string {
	if len(text) <= excerptMaxLen {
		return text
	}
	// Back off to a rune boundary so a diacritic is never cut in half.
	cut := excerptMaxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
