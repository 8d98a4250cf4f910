package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type ZoneStatus string

const (
	ZoneNeeded   ZoneStatus = "needed"
	ZoneOptimal  ZoneStatus = "optimal"
	ZoneOverflow ZoneStatus = "overflow"
)

// Volunteer thresholds. Both bounds belong to ZoneOptimal.
const (
	OptimalMinVolunteers = 50
	OptimalMaxVolunteers = 150
)

const (
	ZoneIDPrefix     = "zone_"
	LastUpdateAbsent = "N/A"
)

// ClassifyStatus is the only place a status is derived from a volunteer count.
func ClassifyStatus(count int) ZoneStatus {
	switch {
	case count > OptimalMaxVolunteers:
		return ZoneOverflow
	case count < OptimalMinVolunteers:
		return ZoneNeeded
	default:
		return ZoneOptimal
	}
}

func (s ZoneStatus) Valid() bool {
	switch s {
	case ZoneNeeded, ZoneOptimal, ZoneOverflow:
		return true
	}
	return false
}

// Color is the map marker colour used by every client.
func (s ZoneStatus) Color() string {
	switch s {
	case ZoneNeeded:
		return "#008000"
	case ZoneOptimal:
		return "#FFA500"
	case ZoneOverflow:
		return "#FF0000"
	default:
		return "gray"
	}
}

type Zone struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	VolunteerCount int        `json:"volunteer_count"`
	Status         ZoneStatus `json:"status"`
	AccessNotes    string     `json:"access_notes"`
	PendingNeeds   []string   `json:"pending_needs"`
	CoveredNeeds   []string   `json:"covered_needs"`
	LastUpdate     string     `json:"last_update"`
}

// ZoneUpdate is the outcome of a coordinator update: the merged record and
// the status it had before the write.
type ZoneUpdate struct {
	Zone           Zone
	PreviousStatus ZoneStatus
}

func (u ZoneUpdate) StatusChanged() bool {
	return u.PreviousStatus != u.Zone.Status
}

func ZoneID(seq int) string {
	return ZoneIDPrefix + strconv.Itoa(seq)
}

// NormalizeZoneID accepts "zone_3" or a bare "3".
func NormalizeZoneID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("empty zone id")
	}
	if !strings.HasPrefix(id, ZoneIDPrefix) {
		id = ZoneIDPrefix + id
	}
	if _, ok := ZoneSeq(id); !ok {
		return "", fmt.Errorf("malformed zone id %q", id)
	}
	return id, nil
}

// ZoneSeq extracts the numeric suffix of a zone id. Only the canonical
// decimal form is accepted, so "zone_03" and "zone_+3" are not ids.
func ZoneSeq(id string) (int, bool) {
	if !strings.HasPrefix(id, ZoneIDPrefix) {
		return 0, false
	}
	suffix := strings.TrimPrefix(id, ZoneIDPrefix)
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 || strconv.Itoa(n) != suffix {
		return 0, false
	}
	return n, true
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
