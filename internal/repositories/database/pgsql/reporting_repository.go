package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	portsrepo "github.com/vehicleledger/vehicle_ledger_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetConsolidatedDayTotals returns per-date debit/credit totals for the range.
// GROUP BY naturally emits nothing for empty days.
func (r *reportingRepository) GetConsolidatedDayTotals(ctx context.Context, companyID string, from, to time.Time) ([]domain.ConsolidatedDayRow, error) {
	query := `
		SELECT
			voucher_date,
			SUM(CASE WHEN side = 'DEBIT' THEN amount ELSE 0 END) AS total_debit,
			SUM(CASE WHEN side = 'CREDIT' THEN amount ELSE 0 END) AS total_credit
		FROM vouchers
		WHERE company_id = $1
		  AND voucher_date BETWEEN $2 AND $3
		GROUP BY voucher_date
		ORDER BY voucher_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying consolidated day totals: %w", err)
	}
	defer rows.Close()

	result := []domain.ConsolidatedDayRow{}
	for rows.Next() {
		var row domain.ConsolidatedDayRow
		if err := rows.Scan(&row.Date, &row.TotalDebit, &row.TotalCredit); err != nil {
			return nil, fmt.Errorf("error scanning consolidated day row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating consolidated day rows: %w", err)
	}
	return result, nil
}

// GetVehicleNets returns one row per active vehicle with its net balance as
// of the cutoff. The LEFT JOIN keeps zero-voucher vehicles in the result at
// net zero.
func (r *reportingRepository) GetVehicleNets(ctx context.Context, companyID string, asOf time.Time) ([]domain.VehicleNet, error) {
	query := `
		SELECT
			v.vehicle_id,
			v.code,
			COALESCE(SUM(CASE WHEN vc.side = 'DEBIT' THEN vc.amount WHEN vc.side = 'CREDIT' THEN -vc.amount END), 0) AS net
		FROM vehicles v
		LEFT JOIN vouchers vc
			ON vc.vehicle_id = v.vehicle_id
			AND vc.voucher_date <= $2
		WHERE v.company_id = $1
		  AND v.is_active = TRUE
		GROUP BY v.vehicle_id, v.code
		ORDER BY v.code ASC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicle nets: %w", err)
	}
	defer rows.Close()

	result := []domain.VehicleNet{}
	for rows.Next() {
		var row domain.VehicleNet
		if err := rows.Scan(&row.VehicleID, &row.Code, &row.Net); err != nil {
			return nil, fmt.Errorf("error scanning vehicle net row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle net rows: %w", err)
	}
	return result, nil
}

// GetRecoveryData returns per active vehicle the aggregates the aging filter
// works from: overall balance, most recent voucher date of any kind, and the
// amount of the most recent credit voucher.
func (r *reportingRepository) GetRecoveryData(ctx context.Context, companyID string) ([]domain.RecoveryData, error) {
	query := `
		SELECT
			v.vehicle_id,
			v.code,
			COALESCE(SUM(CASE WHEN vc.side = 'DEBIT' THEN vc.amount WHEN vc.side = 'CREDIT' THEN -vc.amount END), 0) AS balance,
			MAX(vc.voucher_date) AS last_txn_date,
			(
				SELECT lc.amount
				FROM vouchers lc
				WHERE lc.vehicle_id = v.vehicle_id AND lc.side = 'CREDIT'
				ORDER BY lc.voucher_date DESC, lc.voucher_id DESC
				LIMIT 1
			) AS last_credit_amount
		FROM vehicles v
		LEFT JOIN vouchers vc ON vc.vehicle_id = v.vehicle_id
		WHERE v.company_id = $1
		  AND v.is_active = TRUE
		GROUP BY v.vehicle_id, v.code
		ORDER BY v.code ASC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying recovery data: %w", err)
	}
	defer rows.Close()

	result := []domain.RecoveryData{}
	for rows.Next() {
		var row domain.RecoveryData
		if err := rows.Scan(&row.VehicleID, &row.Code, &row.Balance, &row.LastTxnDate, &row.LastCreditAmount); err != nil {
			return nil, fmt.Errorf("error scanning recovery data row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recovery data rows: %w", err)
	}
	return result, nil
}
