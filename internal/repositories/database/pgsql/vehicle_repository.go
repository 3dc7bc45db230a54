package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	"github.com/vehicleledger/vehicle_ledger_app/internal/models"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/mapping"
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type PgxVehicleRepository struct {
	BaseRepository
}

// newPgxVehicleRepository creates a new repository for vehicle account data.
func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

const vehicleColumns = `vehicle_id, company_id, code, narration, is_active, created_at, last_updated_at`

func scanVehicle(row pgx.Row) (models.Vehicle, error) {
	var m models.Vehicle
	err := row.Scan(
		&m.VehicleID,
		&m.CompanyID,
		&m.Code,
		&m.Narration,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveVehicle persists a new vehicle.
func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)
	query := `
		INSERT INTO vehicles (vehicle_id, company_id, code, narration, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VehicleID,
		m.CompanyID,
		m.Code,
		m.Narration,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The (company_id, lower(code)) unique index fired.
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert vehicle "+m.VehicleID, err)
	}
	return nil
}

// FindVehicleByID retrieves a vehicle by its ID.
func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1;`
	m, err := scanVehicle(r.Pool.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vehicle by ID "+vehicleID, err)
	}
	vehicle := mapping.ToDomainVehicle(m)
	return &vehicle, nil
}

// FindVehicleByCode retrieves a vehicle by company and code, case-insensitively.
func (r *PgxVehicleRepository) FindVehicleByCode(ctx context.Context, companyID, code string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE company_id = $1 AND LOWER(code) = LOWER($2);`
	m, err := scanVehicle(r.Pool.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vehicle by code "+code, err)
	}
	vehicle := mapping.ToDomainVehicle(m)
	return &vehicle, nil
}

// ListVehicles retrieves vehicles for a company ordered by code.
func (r *PgxVehicleRepository) ListVehicles(ctx context.Context, companyID string, activeOnly bool) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE company_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY code ASC;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vehicles for company "+companyID, err)
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		m, err := scanVehicle(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vehicle row for company "+companyID, err)
		}
		vehicles = append(vehicles, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating vehicle rows for company "+companyID, err)
	}
	return mapping.ToDomainVehicleSlice(vehicles), nil
}

// UpdateVehicle updates an existing vehicle's details.
func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)
	query := `
		UPDATE vehicles
		SET narration = $2,
		    is_active = $3,
		    last_updated_at = $4
		WHERE vehicle_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.VehicleID,
		m.Narration,
		m.IsActive,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update vehicle "+m.VehicleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("vehicle " + m.VehicleID + " not found for update")
	}
	return nil
}

// DeactivateVehicle marks a vehicle as inactive.
func (r *PgxVehicleRepository) DeactivateVehicle(ctx context.Context, vehicleID string, now time.Time) error {
	query := `
		UPDATE vehicles
		SET is_active = FALSE,
		    last_updated_at = $2
		WHERE vehicle_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, vehicleID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate vehicle "+vehicleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("vehicle " + vehicleID + " not found for deactivation")
	}
	return nil
}

// MergeVehicles reassigns every voucher from the source vehicle to the target
// and deletes the source, inside one transaction. Any failure rolls the whole
// operation back; a half-migrated ledger must never be visible.
func (r *PgxVehicleRepository) MergeVehicles(ctx context.Context, companyID, sourceVehicleID, targetVehicleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	merge := func() error {
		reassign := `
			UPDATE vouchers
			SET vehicle_id = $3,
			    last_updated_at = NOW()
			WHERE company_id = $1 AND vehicle_id = $2;
		`
		if _, err := tx.Exec(ctx, reassign, companyID, sourceVehicleID, targetVehicleID); err != nil {
			return apperrors.NewAppError(500, "failed to reassign vouchers from vehicle "+sourceVehicleID, err)
		}

		del := `DELETE FROM vehicles WHERE vehicle_id = $1 AND company_id = $2;`
		cmdTag, err := tx.Exec(ctx, del, sourceVehicleID, companyID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to delete source vehicle "+sourceVehicleID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("source vehicle " + sourceVehicleID + " not found for merge")
		}
		return nil
	}

	if err := merge(); err != nil {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			// Rollback failure must not swallow the original error: manual
			// reconciliation is needed.
			return fmt.Errorf("merge failed (%w) and rollback failed (%v): manual reconciliation required", err, rbErr)
		}
		return err
	}

	return r.Commit(ctx, tx)
}
