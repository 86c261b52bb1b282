package mapper

import (
	"time"

	"compliancebot-be/internal/entity"
	"compliancebot-be/internal/model"
)

type CompanyProfileMapper struct{}

func NewCompanyProfileMapper() *CompanyProfileMapper {
	return &CompanyProfileMapper{}
}

func (m *CompanyProfileMapper) ToEntity(p *model.CompanyProfile) *entity.CompanyProfile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.CompanyProfile{
		Id:                 p.Id,
		UserId:             p.UserId,
		CompanyName:        p.CompanyName,
		CUI:                p.CUI,
		RegistrationNumber: p.RegistrationNumber,
		Address:            p.Address,
		Employees:          p.Employees,
		Representative:     p.Representative,
		Email:              p.Email,
		Phone:              p.Phone,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *CompanyProfileMapper) ToModel(p *entity.CompanyProfile) *model.CompanyProfile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.CompanyProfile{
		Id:                 p.Id,
		UserId:             p.UserId,
		CompanyName:        p.CompanyName,
		CUI:                p.CUI,
		RegistrationNumber: p.RegistrationNumber,
		Address:            p.Address,
		Employees:          p.Employees,
		Representative:     p.Representative,
		Email:              p.Email,
		Phone:              p.Phone,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}
