package models

import "time"

// Availability overrides a professional's default working hours for one date.
// At most one record is authoritative per (professional, date): a record with
// IsAvailable=false blocks the whole day regardless of declared hours.
type Availability struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professionalId"`
	Date           string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	IsAvailable    bool      `bson:"is_available" json:"isAvailable"`
	Start          int       `bson:"start,omitempty" json:"start,omitempty"` // custom opening, minutes from midnight
	End            int       `bson:"end,omitempty" json:"end,omitempty"`     // custom closing, minutes from midnight
	Reason         string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// HasCustomHours reports whether the record declares a usable working window.
func (a Availability) HasCustomHours() bool {
	return a.IsAvailable && a.End > a.Start
}
