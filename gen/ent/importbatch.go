// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lewisallan/titan-jobs/gen/ent/importbatch"
)

// ImportBatch is the model entity for the ImportBatch schema.
type ImportBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// RowsScanned holds the value of the "rows_scanned" field.
	RowsScanned int `json:"rows_scanned,omitempty"`
	// RowsRejected holds the value of the "rows_rejected" field.
	RowsRejected int `json:"rows_rejected,omitempty"`
	// RowsPersisted holds the value of the "rows_persisted" field.
	RowsPersisted int `json:"rows_persisted,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importbatch.FieldRowsScanned, importbatch.FieldRowsRejected, importbatch.FieldRowsPersisted:
			values[i] = new(sql.NullInt64)
		case importbatch.FieldSourceName, importbatch.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case importbatch.FieldStartedAt, importbatch.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case importbatch.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportBatch fields.
func (_m *ImportBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importbatch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importbatch.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case importbatch.FieldRowsScanned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_scanned", values[i])
			} else if value.Valid {
				_m.RowsScanned = int(value.Int64)
			}
		case importbatch.FieldRowsRejected:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_rejected", values[i])
			} else if value.Valid {
				_m.RowsRejected = int(value.Int64)
			}
		case importbatch.FieldRowsPersisted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_persisted", values[i])
			} else if value.Valid {
				_m.RowsPersisted = int(value.Int64)
			}
		case importbatch.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case importbatch.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case importbatch.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportBatch.
// This includes values selected through modifiers, order, etc.
func (_m *ImportBatch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImportBatch.
// Note that you need to call ImportBatch.Unwrap() before calling this method if this ImportBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportBatch) Update() *ImportBatchUpdateOne {
	return NewImportBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportBatch) Unwrap() *ImportBatch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportBatch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportBatch) String() string {
	var builder strings.Builder
	builder.WriteString("ImportBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("rows_scanned=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsScanned))
	builder.WriteString(", ")
	builder.WriteString("rows_rejected=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsRejected))
	builder.WriteString(", ")
	builder.WriteString("rows_persisted=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsPersisted))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ImportBatches is a parsable slice of ImportBatch.
type ImportBatches []*ImportBatch
