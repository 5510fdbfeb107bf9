package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ImportBatch struct{ ent.Schema }

func (ImportBatch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_batches"},
	}
}

func (ImportBatch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("source_name").NotEmpty(),
		field.Int("rows_scanned").Default(0),
		field.Int("rows_rejected").Default(0),
		field.Int("rows_persisted").Default(0),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
	}
}
