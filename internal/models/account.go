package models

import "time"

// Account mirrors the accounts table row.
type Account struct {
	AccountID int64     `db:"account_id"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
