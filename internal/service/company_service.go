// FILE: internal/service/company_service.go
package service

import (
	"context"
	"time"

	"compliancebot-be/internal/dto"
	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/repository/specification"
	"compliancebot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICompanyService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.CompanyProfileResponse, error)
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertCompanyProfileRequest) (*dto.CompanyProfileResponse, error)
}

type companyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCompanyService(uowFactory unitofwork.RepositoryFactory) ICompanyService {
	return &companyService{
		uowFactory: uowFactory,
	}
}

func (s *companyService) Get(ctx context.Context, userId uuid.UUID) (*dto.CompanyProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.CompanyProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	return toCompanyProfileResponse(profile), nil
}

func (s *companyService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertCompanyProfileRequest) (*dto.CompanyProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.CompanyProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &entity.CompanyProfile{
			Id:        uuid.New(),
			UserId:    userId,
			CreatedAt: time.Now(),
		}
		applyCompanyProfileRequest(profile, req)
		if err := uow.CompanyProfileRepository().Create(ctx, profile); err != nil {
			return nil, err
		}
		return toCompanyProfileResponse(profile), nil
	}

	now := time.Now()
	applyCompanyProfileRequest(profile, req)
	profile.UpdatedAt = &now
	if err := uow.CompanyProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}
	return toCompanyProfileResponse(profile), nil
}

func applyCompanyProfileRequest(profile *entity.CompanyProfile, req *dto.UpsertCompanyProfileRequest) {
	profile.CompanyName = req.CompanyName
	profile.CUI = req.CUI
	profile.RegistrationNumber = req.RegistrationNumber
	profile.Address = req.Address
	profile.Employees = req.Employees
	profile.Representative = req.Representative
	profile.Email = req.Email
	profile.Phone = req.Phone
}

func toCompanyProfileResponse(p *entity.CompanyProfile) *dto.CompanyProfileResponse {
	return &dto.CompanyProfileResponse{
		Id:                 p.Id,
		CompanyName:        p.CompanyName,
		CUI:                p.CUI,
		RegistrationNumber: p.RegistrationNumber,
		Address:            p.Address,
		Employees:          p.Employees,
		Representative:     p.Representative,
		Email:              p.Email,
		Phone:              p.Phone,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
