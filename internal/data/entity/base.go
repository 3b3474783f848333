package entity

import (
	"time"
)

// Base holds the columns every table shares
type Base struct {
	ID        int64     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
