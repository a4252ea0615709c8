package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one account's aggregated debit and credit totals across
// all posted journal lines, in minor currency units.
type TrialBalanceRow struct {
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
