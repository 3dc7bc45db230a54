package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/apperrors"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
	"github.com/vehicleledger/vehicle_ledger_app/internal/models"
	"github.com/vehicleledger/vehicle_ledger_app/internal/utils/mapping"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, company_id, vehicle_id, voucher_number, voucher_date, amount, side, narration, created_at, last_updated_at`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.VehicleID,
		&m.VoucherNumber,
		&m.Date,
		&m.Amount,
		&m.Side,
		&m.Narration,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveVoucher inserts a new voucher and returns its generated id. A
// (company, number) collision is the sequence race losing side and comes
// back as ErrDuplicate so the caller can re-peek and retry.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) (int64, error) {
	m := mapping.ToModelVoucher(voucher)
	query := `
		INSERT INTO vouchers (company_id, vehicle_id, voucher_number, voucher_date, amount, side, narration, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING voucher_id;
	`
	var voucherID int64
	err := r.Pool.QueryRow(ctx, query,
		m.CompanyID,
		m.VehicleID,
		m.VoucherNumber,
		m.Date,
		m.Amount,
		m.Side,
		m.Narration,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&voucherID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrDuplicate
		}
		return 0, apperrors.NewAppError(500, "failed to insert voucher number "+strconv.FormatInt(m.VoucherNumber, 10), err)
	}
	return voucherID, nil
}

// FindVoucherByID retrieves a voucher by its ID.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID int64) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+strconv.FormatInt(voucherID, 10), err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// FindVoucherByNumber retrieves a voucher by company and voucher number.
func (r *PgxVoucherRepository) FindVoucherByNumber(ctx context.Context, companyID string, number int64) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1 AND voucher_number = $2;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, companyID, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by number "+strconv.FormatInt(number, 10), err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// ListVouchersByVehicle retrieves a vehicle's full history in chronological
// order. The (voucher_date, voucher_id) ordering is the one every running
// balance is folded over; voucher_id breaks same-day ties insertion-stably.
func (r *PgxVoucherRepository) ListVouchersByVehicle(ctx context.Context, vehicleID string) ([]domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE vehicle_id = $1
		ORDER BY voucher_date ASC, voucher_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vouchers for vehicle "+vehicleID, err)
	}
	defer rows.Close()

	vouchers := []models.Voucher{}
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher row for vehicle "+vehicleID, err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher rows for vehicle "+vehicleID, err)
	}
	return mapping.ToDomainVoucherSlice(vouchers), nil
}

// ListVouchersByCompany retrieves one page of a company's vouchers within an
// inclusive date range, ordered (date asc, voucher_number asc) for day-book
// assembly.
func (r *PgxVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, from, to time.Time, limit, offset int) ([]domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE company_id = $1
		  AND voucher_date BETWEEN $2 AND $3
		ORDER BY voucher_date ASC, voucher_number ASC
		LIMIT $4 OFFSET $5;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vouchers for company "+companyID, err)
	}
	defer rows.Close()

	vouchers := []models.Voucher{}
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher row for company "+companyID, err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher rows for company "+companyID, err)
	}
	return mapping.ToDomainVoucherSlice(vouchers), nil
}

// CountVouchersByCompany counts a company's vouchers within an inclusive
// date range.
func (r *PgxVoucherRepository) CountVouchersByCompany(ctx context.Context, companyID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM vouchers
		WHERE company_id = $1
		  AND voucher_date BETWEEN $2 AND $3;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, companyID, from, to).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count vouchers for company "+companyID, err)
	}
	return count, nil
}

// SumSignedByVehicle computes the vehicle's signed balance storage-side.
// Debits add, credits subtract; this is a pure sum with no ordering
// requirement and must agree bit-for-bit with the client-side fold.
func (r *PgxVoucherRepository) SumSignedByVehicle(ctx context.Context, vehicleID string, asOf *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN side = 'DEBIT' THEN amount ELSE -amount END), 0)
		FROM vouchers
		WHERE vehicle_id = $1
	`
	args := []interface{}{vehicleID}
	if asOf != nil {
		query += ` AND voucher_date <= $2`
		args = append(args, *asOf)
	}
	query += `;`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum vouchers for vehicle "+vehicleID, err)
	}
	return sum, nil
}

// UpdateVoucher updates an existing voucher. voucher_number is deliberately
// absent from the SET list: numbers are assigned once and never changed.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	query := `
		UPDATE vouchers
		SET vehicle_id = $2,
		    voucher_date = $3,
		    amount = $4,
		    side = $5,
		    narration = $6,
		    last_updated_at = $7
		WHERE voucher_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.VoucherID,
		m.VehicleID,
		m.Date,
		m.Amount,
		m.Side,
		m.Narration,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update voucher "+strconv.FormatInt(m.VoucherID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + strconv.FormatInt(m.VoucherID, 10) + " not found for update")
	}
	return nil
}

// DeleteVoucher removes a voucher.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1;`, voucherID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete voucher "+strconv.FormatInt(voucherID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + strconv.FormatInt(voucherID, 10) + " not found for delete")
	}
	return nil
}
