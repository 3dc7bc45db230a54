// Package legacy parses the flat-file dumps produced by the old bookkeeping
// program. The format is line-oriented and loosely disciplined, so parsing is
// regex-driven and tolerant: malformed lines become warnings, not failures.
// The parser is one strategy for producing domain.ImportRecords; the importer
// itself never sees raw text.
package legacy

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
)

const dateLayout = "02/01/2006"

// accountRe matches account declaration lines:
//
//	AC UP-25C-1234 Ramesh Transport
var accountRe = regexp.MustCompile(`(?i)^AC\s+(\S+)(?:\s+(.+))?$`)

// voucherRe matches voucher lines:
//
//	104 05/03/2024 UP-25C-1234 1500.00 D freight advance
//
// The side token tolerates the old program's D/C and DR/CR spellings.
var voucherRe = regexp.MustCompile(`^(\d+)\s+(\d{2}/\d{2}/\d{4})\s+(\S+)\s+(\d+(?:\.\d+)?)\s+(?i:(DR?|CR?))(?:\s+(.+))?$`)

// Parse reads a legacy dump and produces import records plus one warning per
// line it could not understand. Blank lines and '*' comment lines are
// ignored. Only an I/O failure is an error; bad content never is.
func Parse(r io.Reader) (domain.ImportRecords, []string, error) {
	records := domain.ImportRecords{
		Vehicles: []domain.VehicleRecord{},
		Vouchers: []domain.VoucherRecord{},
	}
	warnings := []string{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		if m := accountRe.FindStringSubmatch(line); m != nil {
			records.Vehicles = append(records.Vehicles, domain.VehicleRecord{
				Code:      m[1],
				Narration: strings.TrimSpace(m[2]),
			})
			continue
		}

		if m := voucherRe.FindStringSubmatch(line); m != nil {
			rec, err := buildVoucherRecord(m)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("line %d: %s", lineNo, err.Error()))
				continue
			}
			records.Vouchers = append(records.Vouchers, rec)
			continue
		}

		warnings = append(warnings, fmt.Sprintf("line %d: unrecognised format", lineNo))
	}
	if err := scanner.Err(); err != nil {
		return domain.ImportRecords{}, nil, fmt.Errorf("failed to read legacy dump: %w", err)
	}

	return records, warnings, nil
}

func buildVoucherRecord(m []string) (domain.VoucherRecord, error) {
	number, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return domain.VoucherRecord{}, fmt.Errorf("bad voucher number '%s'", m[1])
	}

	date, err := time.ParseInLocation(dateLayout, m[2], time.UTC)
	if err != nil {
		return domain.VoucherRecord{}, fmt.Errorf("bad date '%s'", m[2])
	}

	amount, err := decimal.NewFromString(m[4])
	if err != nil {
		return domain.VoucherRecord{}, fmt.Errorf("bad amount '%s'", m[4])
	}

	side := domain.Credit
	if strings.HasPrefix(strings.ToUpper(m[5]), "D") {
		side = domain.Debit
	}

	return domain.VoucherRecord{
		Number:      number,
		Date:        date,
		VehicleCode: m[3],
		Amount:      amount,
		Side:        side,
		Narration:   strings.TrimSpace(m[6]),
	}, nil
}
