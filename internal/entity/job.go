package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a scheduled cleaning job for data transfer between layers.
//
// Price and Balance are fixed-point decimal strings with two fraction digits
// ("45.00"); NextDue is kept in the raw external form it arrived in and is
// normalized on demand, so an unparseable date is still displayable.
type Job struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone,omitempty"`
	Services      string    `json:"services"`
	Price         string    `json:"price"`
	Balance       string    `json:"balance"`
	NextDue       string    `json:"next_due,omitempty"`
	Frequency     string    `json:"frequency,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
