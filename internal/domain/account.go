package domain

import "time"

// Account represents a customer account that transactions are recorded
// against. The settlement engine only ever references it by ID.
type Account struct {
	ID             int64
	DocumentNumber string
	CreatedAt      time.Time
}
