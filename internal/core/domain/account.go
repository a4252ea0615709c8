package domain

import "time"

// Account is a chart-of-accounts entry. Every journal line references exactly
// one account; the account itself owns nothing.
type Account struct {
	AccountID int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
