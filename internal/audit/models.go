// Package audit keeps an append-only trail of every mutation the engine
// performs, so orphaned records left by partial failures can be traced and
// retried from the log.
package audit

import "time"

// Action identifies what the engine did.
type Action string

const (
	ActionRecordCreated   Action = "insurance.record.created"
	ActionRecordUpdated   Action = "insurance.record.updated"
	ActionStatusToggled   Action = "insurance.record.status_toggled"
	ActionRecordDeleted   Action = "insurance.record.deleted"
	ActionInactiveCleared Action = "insurance.inactive.cleared"
)

// Event is one audit entry. FailedIDs is set for partially failed bulk
// clears and names the records still orphaned in the authoritative store.
type Event struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Action    Action    `json:"action"`
	RecordID  string    `json:"record_id,omitempty"`
	FailedIDs []string  `json:"failed_ids,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
