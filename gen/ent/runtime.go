// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lewisallan/titan-jobs/db/ent/schema"
	"github.com/lewisallan/titan-jobs/gen/ent/customer"
	"github.com/lewisallan/titan-jobs/gen/ent/importbatch"
	"github.com/lewisallan/titan-jobs/gen/ent/job"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescReference is the schema descriptor for reference field.
	customerDescReference := customerFields[1].Descriptor()
	// customer.DefaultReference holds the default value on creation for the reference field.
	customer.DefaultReference = customerDescReference.Default.(string)
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[2].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescAddress is the schema descriptor for address field.
	customerDescAddress := customerFields[3].Descriptor()
	// customer.DefaultAddress holds the default value on creation for the address field.
	customer.DefaultAddress = customerDescAddress.Default.(string)
	// customerDescPhone is the schema descriptor for phone field.
	customerDescPhone := customerFields[4].Descriptor()
	// customer.DefaultPhone holds the default value on creation for the phone field.
	customer.DefaultPhone = customerDescPhone.Default.(string)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[5].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[6].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	importbatchFields := schema.ImportBatch{}.Fields()
	_ = importbatchFields
	// importbatchDescSourceName is the schema descriptor for source_name field.
	importbatchDescSourceName := importbatchFields[1].Descriptor()
	// importbatch.SourceNameValidator is a validator for the "source_name" field. It is called by the builders before save.
	importbatch.SourceNameValidator = importbatchDescSourceName.Validators[0].(func(string) error)
	// importbatchDescRowsScanned is the schema descriptor for rows_scanned field.
	importbatchDescRowsScanned := importbatchFields[2].Descriptor()
	// importbatch.DefaultRowsScanned holds the default value on creation for the rows_scanned field.
	importbatch.DefaultRowsScanned = importbatchDescRowsScanned.Default.(int)
	// importbatchDescRowsRejected is the schema descriptor for rows_rejected field.
	importbatchDescRowsRejected := importbatchFields[3].Descriptor()
	// importbatch.DefaultRowsRejected holds the default value on creation for the rows_rejected field.
	importbatch.DefaultRowsRejected = importbatchDescRowsRejected.Default.(int)
	// importbatchDescRowsPersisted is the schema descriptor for rows_persisted field.
	importbatchDescRowsPersisted := importbatchFields[4].Descriptor()
	// importbatch.DefaultRowsPersisted holds the default value on creation for the rows_persisted field.
	importbatch.DefaultRowsPersisted = importbatchDescRowsPersisted.Default.(int)
	// importbatchDescStartedAt is the schema descriptor for started_at field.
	importbatchDescStartedAt := importbatchFields[5].Descriptor()
	// importbatch.DefaultStartedAt holds the default value on creation for the started_at field.
	importbatch.DefaultStartedAt = importbatchDescStartedAt.Default.(func() time.Time)
	// importbatchDescID is the schema descriptor for id field.
	importbatchDescID := importbatchFields[0].Descriptor()
	// importbatch.DefaultID holds the default value on creation for the id field.
	importbatch.DefaultID = importbatchDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescName is the schema descriptor for name field.
	jobDescName := jobFields[1].Descriptor()
	// job.NameValidator is a validator for the "name" field. It is called by the builders before save.
	job.NameValidator = jobDescName.Validators[0].(func(string) error)
	// jobDescAddress is the schema descriptor for address field.
	jobDescAddress := jobFields[2].Descriptor()
	// job.DefaultAddress holds the default value on creation for the address field.
	job.DefaultAddress = jobDescAddress.Default.(string)
	// jobDescPhone is the schema descriptor for phone field.
	jobDescPhone := jobFields[3].Descriptor()
	// job.DefaultPhone holds the default value on creation for the phone field.
	job.DefaultPhone = jobDescPhone.Default.(string)
	// jobDescServices is the schema descriptor for services field.
	jobDescServices := jobFields[4].Descriptor()
	// job.DefaultServices holds the default value on creation for the services field.
	job.DefaultServices = jobDescServices.Default.(string)
	// jobDescPrice is the schema descriptor for price field.
	jobDescPrice := jobFields[5].Descriptor()
	// job.DefaultPrice holds the default value on creation for the price field.
	job.DefaultPrice = jobDescPrice.Default.(string)
	// job.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	job.PriceValidator = jobDescPrice.Validators[0].(func(string) error)
	// jobDescBalance is the schema descriptor for balance field.
	jobDescBalance := jobFields[6].Descriptor()
	// job.DefaultBalance holds the default value on creation for the balance field.
	job.DefaultBalance = jobDescBalance.Default.(string)
	// job.BalanceValidator is a validator for the "balance" field. It is called by the builders before save.
	job.BalanceValidator = jobDescBalance.Validators[0].(func(string) error)
	// jobDescNextDue is the schema descriptor for next_due field.
	jobDescNextDue := jobFields[7].Descriptor()
	// job.DefaultNextDue holds the default value on creation for the next_due field.
	job.DefaultNextDue = jobDescNextDue.Default.(string)
	// jobDescFrequency is the schema descriptor for frequency field.
	jobDescFrequency := jobFields[8].Descriptor()
	// job.DefaultFrequency holds the default value on creation for the frequency field.
	job.DefaultFrequency = jobDescFrequency.Default.(string)
	// jobDescPaymentMethod is the schema descriptor for payment_method field.
	jobDescPaymentMethod := jobFields[9].Descriptor()
	// job.DefaultPaymentMethod holds the default value on creation for the payment_method field.
	job.DefaultPaymentMethod = jobDescPaymentMethod.Default.(string)
	// jobDescNotes is the schema descriptor for notes field.
	jobDescNotes := jobFields[10].Descriptor()
	// job.DefaultNotes holds the default value on creation for the notes field.
	job.DefaultNotes = jobDescNotes.Default.(string)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[11].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[12].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[13].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
}
