package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/services"
	"github.com/vehicleledger/vehicle_ledger_app/internal/dto"
)

// companyService implements the CompanySvc interface.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service.
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvc {
	return &companyService{companyRepo: repo}
}

var _ portssvc.CompanySvc = (*companyService)(nil)

// CreateCompany creates a new company with a zeroed voucher counter.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	if !req.FinancialYearTo.After(req.FinancialYearFrom) {
		return nil, fmt.Errorf("%w: financial year end must be after start", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:         uuid.NewString(),
		Name:              req.Name,
		FinancialYearFrom: req.FinancialYearFrom,
		FinancialYearTo:   req.FinancialYearTo,
		LastVoucherNumber: 0,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	s.LogInfo(ctx, "Company created", "company_id", company.CompanyID, "name", company.Name)
	return &company, nil
}

// GetCompanyByID retrieves a company.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}
	return company, nil
}

// ListCompanies retrieves all companies.
func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
