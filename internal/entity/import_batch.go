package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportBatch represents one bulk import run for data transfer between layers.
type ImportBatch struct {
	ID            uuid.UUID  `json:"id"`
	SourceName    string     `json:"source_name"`
	RowsScanned   int        `json:"rows_scanned"`
	RowsRejected  int        `json:"rows_rejected"`
	RowsPersisted int        `json:"rows_persisted"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
}
