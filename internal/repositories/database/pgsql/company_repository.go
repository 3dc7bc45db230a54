package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	"github.com/vehicleledger/vehicle_ledger_app/internal/models"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/mapping"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// SaveCompany persists a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (company_id, name, fy_from, fy_to, last_voucher_number, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.Name,
		m.FinancialYearFrom,
		m.FinancialYearTo,
		m.LastVoucherNumber,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert company "+m.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, fy_from, fy_to, last_voucher_number, is_active, created_at, last_updated_at
		FROM companies
		WHERE company_id = $1;
	`
	var m models.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&m.CompanyID,
		&m.Name,
		&m.FinancialYearFrom,
		&m.FinancialYearTo,
		&m.LastVoucherNumber,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find company by ID "+companyID, err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}

// ListCompanies retrieves all companies, active first, by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `
		SELECT company_id, name, fy_from, fy_to, last_voucher_number, is_active, created_at, last_updated_at
		FROM companies
		ORDER BY is_active DESC, name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		var m models.Company
		if err := rows.Scan(
			&m.CompanyID,
			&m.Name,
			&m.FinancialYearFrom,
			&m.FinancialYearTo,
			&m.LastVoucherNumber,
			&m.IsActive,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company row", err)
		}
		companies = append(companies, mapping.ToDomainCompany(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating company rows", err)
	}
	return companies, nil
}

// UpdateCompany updates a company's details. last_voucher_number is excluded:
// it moves only through SetLastVoucherNumber.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		UPDATE companies
		SET name = $2,
		    fy_from = $3,
		    fy_to = $4,
		    is_active = $5,
		    last_updated_at = $6
		WHERE company_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.Name,
		m.FinancialYearFrom,
		m.FinancialYearTo,
		m.IsActive,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+m.CompanyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("company " + m.CompanyID + " not found for update")
	}
	return nil
}

// SetLastVoucherNumber conditionally advances the voucher counter. The guard
// makes a late-arriving smaller advance a no-op rather than a regression.
func (r *PgxCompanyRepository) SetLastVoucherNumber(ctx context.Context, companyID string, n int64, now time.Time) error {
	query := `
		UPDATE companies
		SET last_voucher_number = $2,
		    last_updated_at = $3
		WHERE company_id = $1
		  AND last_voucher_number < $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, n, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set last voucher number for company "+companyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the company is missing or the advance was stale. Distinguish
		// the two so callers can surface real not-found errors.
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE company_id = $1)`, companyID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to verify company "+companyID, err)
		}
		if !exists {
			return apperrors.NewNotFoundError("company " + companyID + " not found for sequence advance")
		}
		// Stale advance: the counter is already at or past n.
	}
	return nil
}
