// FILE: internal/service/compliance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/repository/specification"
	"compliancebot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

var ErrComplianceItemNotFound = errors.New("compliance item not found")

const upcomingDeadlineWindow = 30 * 24 * time.Hour

type IComplianceService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ComplianceItemResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateComplianceItemRequest) (*dto.ComplianceItemResponse, error)
	Update(ctx context.Context, userId, itemId uuid.UUID, req *dto.UpdateComplianceItemRequest) (*dto.ComplianceItemResponse, error)
	Delete(ctx context.Context, userId, itemId uuid.UUID) error
	GetStats(ctx context.Context, userId uuid.UUID) (*dto.ComplianceStatsResponse, error)
}

type complianceService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewComplianceService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache) IComplianceService {
	return &complianceService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *complianceService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ComplianceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.ComplianceItemRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ComplianceItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toComplianceItemResponse(item))
	}
	return result, nil
}

func (s *complianceService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateComplianceItemRequest) (*dto.ComplianceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item := entity.ComplianceItem{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Category:  entity.ComplianceCategory(req.Category),
		Status:    entity.ComplianceStatusPending,
		Deadline:  parseDateField(req.Deadline),
		CreatedAt: time.Now(),
	}
	if err := uow.ComplianceItemRepository().Create(ctx, &item); err != nil {
		return nil, err
	}

	s.cache.Delete(statsCacheKey(userId))
	return toComplianceItemResponse(&item), nil
}

func (s *complianceService) Update(ctx context.Context, userId, itemId uuid.UUID, req *dto.UpdateComplianceItemRequest) (*dto.ComplianceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ComplianceItemRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrComplianceItemNotFound
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Category != "" {
		item.Category = entity.ComplianceCategory(req.Category)
	}
	if req.Status != "" {
		item.Status = entity.ComplianceStatus(req.Status)
	}
	if req.Deadline != "" {
		item.Deadline = parseDateField(req.Deadline)
	}
	now := time.Now()
	item.UpdatedAt = &now

	if err := uow.ComplianceItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	s.cache.Delete(statsCacheKey(userId))
	return toComplianceItemResponse(item), nil
}

func (s *complianceService) Delete(ctx context.Context, userId, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ComplianceItemRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrComplianceItemNotFound
	}

	if err := uow.ComplianceItemRepository().Delete(ctx, itemId); err != nil {
		return err
	}

	s.cache.Delete(statsCacheKey(userId))
	return nil
}

func (s *complianceService) GetStats(ctx context.Context, userId uuid.UUID) (*dto.ComplianceStatsResponse, error) {
	if cached, found := s.cache.Get(statsCacheKey(userId)); found {
		return cached.(*dto.ComplianceStatsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.ComplianceItemRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	stats := &dto.ComplianceStatsResponse{
		Total:      len(items),
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
	}

	now := time.Now()
	horizon := now.Add(upcomingDeadlineWindow)
	var upcoming []*entity.ComplianceItem

	for _, item := range items {
		stats.ByStatus[string(item.Status)]++
		stats.ByCategory[string(item.Category)]++
		if item.Status != entity.ComplianceStatusCompleted &&
			item.Deadline != nil && item.Deadline.After(now) && item.Deadline.Before(horizon) {
			upcoming = append(upcoming, item)
		}
	}

	if stats.Total > 0 {
		stats.CompletionPercent = stats.ByStatus[string(entity.ComplianceStatusCompleted)] * 100 / stats.Total
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Deadline.Before(*upcoming[j].Deadline)
	})
	stats.UpcomingDeadlines = make([]dto.ComplianceItemResponse, 0, len(upcoming))
	for _, item := range upcoming {
		stats.UpcomingDeadlines = append(stats.UpcomingDeadlines, *toComplianceItemResponse(item))
	}

	s.cache.Set(statsCacheKey(userId), stats, gocache.DefaultExpiration)
	return stats, nil
}

func statsCacheKey(userId uuid.UUID) string {
	return fmt.Sprintf("compliance:stats:%s", userId)
}

func toComplianceItemResponse(i *entity.ComplianceItem) *dto.ComplianceItemResponse {
	return &dto.ComplianceItemResponse{
		Id:        i.Id,
		Title:     i.Title,
		Category:  string(i.Category),
		Status:    string(i.Status),
		Deadline:  i.Deadline,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// parseDateField parses an ISO yyyy-mm-dd value, nil when empty or invalid.
// Validation happens at the DTO layer, this is the final safety net.
func parseDateField(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
