// Code generated by ent, DO NOT EDIT.

package importbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lewisallan/titan-jobs/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldID, id))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldSourceName, v))
}

// RowsScanned applies equality check predicate on the "rows_scanned" field. It's identical to RowsScannedEQ.
func RowsScanned(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldRowsScanned, v))
}

// RowsRejected applies equality check predicate on the "rows_rejected" field. It's identical to RowsRejectedEQ.
func RowsRejected(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldRowsRejected, v))
}

// RowsPersisted applies equality check predicate on the "rows_persisted" field. It's identical to RowsPersistedEQ.
func RowsPersisted(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldRowsPersisted, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldFinishedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldErrorMessage, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContainsFold(FieldSourceName, v))
}

// RowsScannedEQ applies the EQ predicate on the "rows_scanned" field.
func RowsScannedEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldRowsScanned, v))
}

// RowsScannedNEQ applies the NEQ predicate on the "rows_scanned" field.
func RowsScannedNEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldRowsScanned, v))
}

// RowsScannedIn applies the In predicate on the "rows_scanned" field.
func RowsScannedIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldRowsScanned, vs...))
}

// RowsScannedNotIn applies the NotIn predicate on the "rows_scanned" field.
func RowsScannedNotIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldRowsScanned, vs...))
}

// RowsScannedGT applies the GT predicate on the "rows_scanned" field.
func RowsScannedGT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldRowsScanned, v))
}

// RowsScannedGTE applies the GTE predicate on the "rows_scanned" field.
func RowsScannedGTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldRowsScanned, v))
}

// RowsScannedLT applies the LT predicate on the "rows_scanned" field.
func RowsScannedLT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldRowsScanned, v))
}

// RowsScannedLTE applies the LTE predicate on the "rows_scanned" field.
func RowsScannedLTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldRowsScanned, v))
}

// RowsRejectedEQ applies the EQ predicate on the "rows_rejected" field.
func RowsRejectedEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldRowsRejected, v))
}

// RowsRejectedNEQ applies the NEQ predicate on the "rows_rejected" field.
func RowsRejectedNEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldRowsRejected, v))
}

// RowsRejectedIn applies the In predicate on the "rows_rejected" field.
func RowsRejectedIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldRowsRejected, vs...))
}

// RowsRejectedNotIn applies the NotIn predicate on the "rows_rejected" field.
func RowsRejectedNotIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldRowsRejected, vs...))
}

// RowsRejectedGT applies the GT predicate on the "rows_rejected" field.
func RowsRejectedGT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldRowsRejected, v))
}

// RowsRejectedGTE applies the GTE predicate on the "rows_rejected" field.
func RowsRejectedGTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldRowsRejected, v))
}

// RowsRejectedLT applies the LT predicate on the "rows_rejected" field.
func RowsRejectedLT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldRowsRejected, v))
}

// RowsRejectedLTE applies the LTE predicate on the "rows_rejected" field.
func RowsRejectedLTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldRowsRejected, v))
}

// RowsPersistedEQ applies the EQ predicate on the "rows_persisted" field.
func RowsPersistedEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldRowsPersisted, v))
}

// RowsPersistedNEQ applies the NEQ predicate on the "rows_persisted" field.
func RowsPersistedNEQ(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldRowsPersisted, v))
}

// RowsPersistedIn applies the In predicate on the "rows_persisted" field.
func RowsPersistedIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldRowsPersisted, vs...))
}

// RowsPersistedNotIn applies the NotIn predicate on the "rows_persisted" field.
func RowsPersistedNotIn(vs ...int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldRowsPersisted, vs...))
}

// RowsPersistedGT applies the GT predicate on the "rows_persisted" field.
func RowsPersistedGT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldRowsPersisted, v))
}

// RowsPersistedGTE applies the GTE predicate on the "rows_persisted" field.
func RowsPersistedGTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldRowsPersisted, v))
}

// RowsPersistedLT applies the LT predicate on the "rows_persisted" field.
func RowsPersistedLT(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldRowsPersisted, v))
}

// RowsPersistedLTE applies the LTE predicate on the "rows_persisted" field.
func RowsPersistedLTE(v int) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldRowsPersisted, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotNull(FieldFinishedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ImportBatch {
	return predicate.ImportBatch(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportBatch) predicate.ImportBatch {
	return predicate.ImportBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportBatch) predicate.ImportBatch {
	return predicate.ImportBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportBatch) predicate.ImportBatch {
	return predicate.ImportBatch(sql.NotPredicates(p))
}
