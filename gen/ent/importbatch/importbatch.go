// Code generated by ent, DO NOT EDIT.

package importbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the importbatch type in the database.
	Label = "import_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldRowsScanned holds the string denoting the rows_scanned field in the database.
	FieldRowsScanned = "rows_scanned"
	// FieldRowsRejected holds the string denoting the rows_rejected field in the database.
	FieldRowsRejected = "rows_rejected"
	// FieldRowsPersisted holds the string denoting the rows_persisted field in the database.
	FieldRowsPersisted = "rows_persisted"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the importbatch in the database.
	Table = "import_batches"
)

// Columns holds all SQL columns for importbatch fields.
var Columns = []string{
	FieldID,
	FieldSourceName,
	FieldRowsScanned,
	FieldRowsRejected,
	FieldRowsPersisted,
	FieldStartedAt,
	FieldFinishedAt,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceNameValidator is a validator for the "source_name" field. It is called by the builders before save.
	SourceNameValidator func(string) error
	// DefaultRowsScanned holds the default value on creation for the "rows_scanned" field.
	DefaultRowsScanned int
	// DefaultRowsRejected holds the default value on creation for the "rows_rejected" field.
	DefaultRowsRejected int
	// DefaultRowsPersisted holds the default value on creation for the "rows_persisted" field.
	DefaultRowsPersisted int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ImportBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByRowsScanned orders the results by the rows_scanned field.
func ByRowsScanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsScanned, opts...).ToFunc()
}

// ByRowsRejected orders the results by the rows_rejected field.
func ByRowsRejected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsRejected, opts...).ToFunc()
}

// ByRowsPersisted orders the results by the rows_persisted field.
func ByRowsPersisted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsPersisted, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
