// FILE: internal/service/deadline_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/pkg/logger"
	"compliancebot-be/internal/repository/specification"
	"compliancebot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrDeadlineNotFound = errors.New("deadline not found")

// Deadlines closer than this get a reminder event on creation.
const reminderWindow = 7 * 24 * time.Hour

type IDeadlineService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.DeadlineResponse, error)
	GetByMonth(ctx context.Context, userId uuid.UUID, year int, month time.Month) ([]*dto.DeadlineResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDeadlineRequest) (*dto.DeadlineResponse, error)
	Update(ctx context.Context, userId, deadlineId uuid.UUID, req *dto.UpdateDeadlineRequest) (*dto.DeadlineResponse, error)
	Delete(ctx context.Context, userId, deadlineId uuid.UUID) error

	// PublishDueReminders scans for incomplete deadlines inside the reminder
	// window and publishes one event per match. Invoked periodically.
	PublishDueReminders(ctx context.Context) error
}

type deadlineService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewDeadlineService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IDeadlineService {
	return &deadlineService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *deadlineService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.DeadlineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deadlines, err := uow.DeadlineRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "due_date", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	return toDeadlineResponses(deadlines), nil
}

func (s *deadlineService) GetByMonth(ctx context.Context, userId uuid.UUID, year int, month time.Month) ([]*dto.DeadlineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	deadlines, err := uow.DeadlineRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.DueWithin{From: from, To: from.AddDate(0, 1, 0)},
		specification.OrderBy{Field: "due_date", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	return toDeadlineResponses(deadlines), nil
}

func (s *deadlineService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDeadlineRequest) (*dto.DeadlineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, err
	}

	deadlineType := req.Type
	if deadlineType == "" {
		deadlineType = "other"
	}

	deadline := entity.Deadline{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Type:      deadlineType,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
	}
	if err := uow.DeadlineRepository().Create(ctx, &deadline); err != nil {
		return nil, err
	}

	if until := time.Until(dueDate); until > 0 && until < reminderWindow {
		s.publishReminder(ctx, &deadline)
	}

	return toDeadlineResponse(&deadline), nil
}

func (s *deadlineService) Update(ctx context.Context, userId, deadlineId uuid.UUID, req *dto.UpdateDeadlineRequest) (*dto.DeadlineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deadline, err := uow.DeadlineRepository().FindOne(ctx,
		specification.ByID{ID: deadlineId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if deadline == nil {
		return nil, ErrDeadlineNotFound
	}

	if req.Title != "" {
		deadline.Title = req.Title
	}
	if req.Type != "" {
		deadline.Type = req.Type
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, err
		}
		deadline.DueDate = dueDate
	}
	if req.IsCompleted != nil {
		deadline.IsCompleted = *req.IsCompleted
	}
	now := time.Now()
	deadline.UpdatedAt = &now

	if err := uow.DeadlineRepository().Update(ctx, deadline); err != nil {
		return nil, err
	}

	return toDeadlineResponse(deadline), nil
}

func (s *deadlineService) Delete(ctx context.Context, userId, deadlineId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deadline, err := uow.DeadlineRepository().FindOne(ctx,
		specification.ByID{ID: deadlineId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if deadline == nil {
		return ErrDeadlineNotFound
	}

	return uow.DeadlineRepository().Delete(ctx, deadlineId)
}

func (s *deadlineService) PublishDueReminders(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	deadlines, err := uow.DeadlineRepository().FindAll(ctx,
		specification.DueWithin{From: now, To: now.Add(reminderWindow)},
		specification.NotCompleted{},
	)
	if err != nil {
		return err
	}

	for _, deadline := range deadlines {
		s.publishReminder(ctx, deadline)
	}
	return nil
}

func (s *deadlineService) publishReminder(ctx context.Context, deadline *entity.Deadline) {
	msg := dto.DeadlineReminderMessage{
		DeadlineId: deadline.Id,
		UserId:     deadline.UserId,
	}
	payload, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Error("deadline", "failed to publish reminder", map[string]interface{}{
			"deadline_id": deadline.Id.String(),
			"error":       err.Error(),
		})
	}
}

func toDeadlineResponse(d *entity.Deadline) *dto.DeadlineResponse {
	return &dto.DeadlineResponse{
		Id:          d.Id,
		Title:       d.Title,
		Type:        d.Type,
		DueDate:     d.DueDate,
		IsCompleted: d.IsCompleted,
		CreatedAt:   d.CreatedAt,
	}
}

func toDeadlineResponses(deadlines []*entity.Deadline) []*dto.DeadlineResponse {
	result := make([]*dto.DeadlineResponse, 0, len(deadlines))
	for _, d := range deadlines {
		result = append(result, toDeadlineResponse(d))
	}
	return result
}
