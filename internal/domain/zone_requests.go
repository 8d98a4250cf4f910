package domain

type CreateZoneRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,lat"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,lng"`
	AccessNotes string   `json:"access_notes" validate:"max=2000"`
}

// UpdateZoneRequest carries the coordinator-editable fields. Nil means
// "leave as stored".
type UpdateZoneRequest struct {
	VolunteerCount *int      `json:"volunteer_count" validate:"omitempty,min=0,max=100000"`
	AccessNotes    *string   `json:"access_notes" validate:"omitempty,max=2000"`
	PendingNeeds   *[]string `json:"pending_needs" validate:"omitempty,dive,needlabel"`
	CoveredNeeds   *[]string `json:"covered_needs" validate:"omitempty,dive,needlabel"`
}

func (r UpdateZoneRequest) Empty() bool {
	return r.VolunteerCount == nil && r.AccessNotes == nil && r.PendingNeeds == nil && r.CoveredNeeds == nil
}

// EditZoneRequest carries the administrator-editable identity fields.
type EditZoneRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,lat"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,lng"`
	AccessNotes *string  `json:"access_notes" validate:"omitempty,max=2000"`
}

func (r EditZoneRequest) Empty() bool {
	return r.Name == nil && r.Latitude == nil && r.Longitude == nil && r.AccessNotes == nil
}
