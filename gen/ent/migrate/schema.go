// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reference", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_name",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[2]},
			},
		},
	}
	// ImportBatchesColumns holds the columns for the "import_batches" table.
	ImportBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_name", Type: field.TypeString},
		{Name: "rows_scanned", Type: field.TypeInt, Default: 0},
		{Name: "rows_rejected", Type: field.TypeInt, Default: 0},
		{Name: "rows_persisted", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// ImportBatchesTable holds the schema information for the "import_batches" table.
	ImportBatchesTable = &schema.Table{
		Name:       "import_batches",
		Columns:    ImportBatchesColumns,
		PrimaryKey: []*schema.Column{ImportBatchesColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "services", Type: field.TypeString, Default: ""},
		{Name: "price", Type: field.TypeString, Default: "0.00", SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "balance", Type: field.TypeString, Default: "0.00", SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "next_due", Type: field.TypeString, Default: ""},
		{Name: "frequency", Type: field.TypeString, Default: ""},
		{Name: "payment_method", Type: field.TypeString, Default: ""},
		{Name: "notes", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[11]},
			},
			{
				Name:    "job_next_due",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		ImportBatchesTable,
		JobsTable,
	}
)

func init() {
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	ImportBatchesTable.Annotation = &entsql.Annotation{
		Table: "import_batches",
	}
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
}
