package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuditZoneCreated         = "zone_created"
	AuditZoneUpdated         = "zone_updated"
	AuditZoneEdited          = "zone_edited"
	AuditZoneDeleted         = "zone_deleted"
	AuditZonesRestructured   = "zones_restructured"
	AuditCoordinatorAdded    = "coordinator_added"
	AuditCoordinatorDisabled = "coordinator_deactivated"
	AuditCoordinatorDeleted  = "coordinator_deleted"
	AuditLoginSucceeded      = "login_succeeded"
	AuditLoginFailed         = "login_failed"
)

type AuditEvent struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	Role       Role      `json:"role"`
	Target     string    `json:"target"`
	Success    bool      `json:"success"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditCount is one row of the per-action tally used by the admin stats.
type AuditCount struct {
	Action  string `json:"action"`
	Success bool   `json:"success"`
	Count   int64  `json:"count"`
}
