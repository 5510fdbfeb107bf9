// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// ImportBatch is the predicate function for importbatch builders.
type ImportBatch func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)
