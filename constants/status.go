package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending   JobStatus = "pending"   // scheduled, not yet done
	JobStatusDebtor    JobStatus = "debtor"    // imported with an outstanding balance
	JobStatusOverdue   JobStatus = "overdue"   // finished via bank transfer, payment not yet received
	JobStatusCompleted JobStatus = "completed" // done and paid
)

// IsTerminal reports whether a status cannot return to pending.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted
}
