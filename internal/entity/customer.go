package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents an address-book entry for data transfer between layers.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference,omitempty"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
