package accounting

import "github.com/kjm/ledger-lite/internal/core/domain"

// SummarizeLines computes per-entry debit and credit totals by grouping line
// amounts by side. This is a post-hoc recomputation over persisted data, not
// a re-validation: lines whose side matches neither DEBIT nor CREDIT are
// excluded from both totals instead of failing the read path.
func SummarizeLines(lines []domain.JournalLine) (debitTotal, creditTotal int64) {
	for _, line := range lines {
		switch line.Side {
		case domain.Debit:
			debitTotal += line.Amount
		case domain.Credit:
			creditTotal += line.Amount
		}
	}
	return debitTotal, creditTotal
}
