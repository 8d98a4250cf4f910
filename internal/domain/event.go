package domain

import "time"

// ZoneStatusChanged is queued when a coordinator update moves a zone to a
// different status.
type ZoneStatusChanged struct {
	ZoneID         string     `json:"zone_id"`
	ZoneName       string     `json:"zone_name"`
	PreviousStatus ZoneStatus `json:"previous_status"`
	Status         ZoneStatus `json:"status"`
	VolunteerCount int        `json:"volunteer_count"`
	ChangedBy      string     `json:"changed_by"`
	ChangedAt      time.Time  `json:"changed_at"`
}
