// Package queue defines message payloads exchanged over the message broker
// and the best-effort publisher that emits them.
package queue

// Actions carried by ItemEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ItemEvent is published after a successful item write. It carries enough
// information for downstream consumers to log or trigger side effects
// without querying the primary database. Deleted events carry only the id.
type ItemEvent struct {
	Action     string `json:"action"`
	ItemID     string `json:"item_id"`
	UserID     string `json:"user_id,omitempty"`
	Name       string `json:"name,omitempty"`
	Price      string `json:"price,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
