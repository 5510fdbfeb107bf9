package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/lewisallan/titan-jobs/constants"
	"github.com/lewisallan/titan-jobs/db/ent/schema/utils"
)

// Money columns are stored as two-decimal strings so values round-trip
// without float drift; the check keeps malformed text out of the table.
var reMoney = regexp.MustCompile(`^\d+\.\d{2}$`)

var reMoneyErr = errors.New("must be a non-negative two-decimal amount")

func moneyValidator(s string) error {
	if reMoney.MatchString(s) {
		return nil
	}
	return reMoneyErr
}

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("address").Default(""),
		field.String("phone").Default(""),
		field.String("services").Default(""),
		field.String("price").
			Default("0.00").
			Validate(moneyValidator).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("balance").
			Default("0.00").
			Validate(moneyValidator).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// Raw external form on purpose: an unparseable date is still shown to
		// the operator even though it never sorts or filters.
		field.String("next_due").Default(""),
		field.String("frequency").Default(""),
		field.String("payment_method").Default(""),
		field.String("notes").Default(""),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.JobStatusPending),
				string(constants.JobStatusDebtor),
				string(constants.JobStatusOverdue),
				string(constants.JobStatusCompleted),
			)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("next_due"),
	}
}
