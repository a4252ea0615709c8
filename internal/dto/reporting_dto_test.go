package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjm/ledger-lite/internal/core/domain"
	"github.com/kjm/ledger-lite/internal/dto"
)

func TestToTrialBalanceResponse(t *testing.T) {
	rows := []domain.TrialBalanceRow{
		{
			AccountID:   1,
			AccountCode: "1000",
			AccountName: "Cash",
			Debit:       decimal.NewFromInt(125000),
			Credit:      decimal.NewFromInt(5000),
		},
		{
			AccountID:   2,
			AccountCode: "4000",
			AccountName: "Revenue",
			Debit:       decimal.Zero,
			Credit:      decimal.NewFromInt(120000),
		},
	}

	response := dto.ToTrialBalanceResponse(rows)

	require.Len(t, response.Rows, 2)
	// Minor units become major units: 125000 -> 1250.00
	assert.True(t, response.Rows[0].Debit.Equal(decimal.RequireFromString("1250")), "got %s", response.Rows[0].Debit)
	assert.True(t, response.Rows[0].Credit.Equal(decimal.RequireFromString("50")))
	assert.True(t, response.Rows[1].Credit.Equal(decimal.RequireFromString("1200")))
	assert.True(t, response.Totals.Debit.Equal(decimal.RequireFromString("1250")))
	assert.True(t, response.Totals.Credit.Equal(decimal.RequireFromString("1250")))
}

func TestToTrialBalanceResponse_Empty(t *testing.T) {
	response := dto.ToTrialBalanceResponse(nil)

	assert.NotNil(t, response.Rows)
	assert.Empty(t, response.Rows)
	assert.True(t, response.Totals.Debit.IsZero())
	assert.True(t, response.Totals.Credit.IsZero())
}
