package legacy_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vehicleledger/vehicle_ledger_app/internal/core/domain"
	"github.com/vehicleledger/vehicle_ledger_app/internal/importing/legacy"
)

func TestParse_MixedDump(t *testing.T) {
	dump := strings.Join([]string{
		"* exported 31/03/2024",
		"AC UP-25C-1234 Ramesh Transport",
		"ac up-78x-0009",
		"",
		"104 05/03/2024 UP-25C-1234 1500.00 D freight advance",
		"105 06/03/2024 UP-25C-1234 500 CR part payment",
		"106 07/03/2024 up-78x-0009 250.75 dr",
	}, "\n")

	records, warnings, err := legacy.Parse(strings.NewReader(dump))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, records.Vehicles, 2)
	assert.Equal(t, "UP-25C-1234", records.Vehicles[0].Code)
	assert.Equal(t, "Ramesh Transport", records.Vehicles[0].Narration)
	assert.Equal(t, "up-78x-0009", records.Vehicles[1].Code)
	assert.Empty(t, records.Vehicles[1].Narration)

	require.Len(t, records.Vouchers, 3)

	first := records.Vouchers[0]
	assert.Equal(t, int64(104), first.Number)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "UP-25C-1234", first.VehicleCode)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, domain.Debit, first.Side)
	assert.Equal(t, "freight advance", first.Narration)

	assert.Equal(t, domain.Credit, records.Vouchers[1].Side)
	assert.True(t, records.Vouchers[1].Amount.Equal(decimal.NewFromInt(500)))

	assert.Equal(t, domain.Debit, records.Vouchers[2].Side)
	assert.Empty(t, records.Vouchers[2].Narration)
}

func TestParse_MalformedLinesBecomeWarnings(t *testing.T) {
	dump := strings.Join([]string{
		"AC UP-25C-1234",
		"garbage line that matches nothing",
		"107 31/13/2024 UP-25C-1234 100 D bad month",
		"108 05/03/2024 UP-25C-1234 100 D good line",
	}, "\n")

	records, warnings, err := legacy.Parse(strings.NewReader(dump))
	require.NoError(t, err)

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "line 2")
	assert.Contains(t, warnings[1], "line 3")

	require.Len(t, records.Vouchers, 1)
	assert.Equal(t, int64(108), records.Vouchers[0].Number)
}

func TestParse_EmptyInput(t *testing.T) {
	records, warnings, err := legacy.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, records.Vehicles)
	assert.Empty(t, records.Vouchers)
}
