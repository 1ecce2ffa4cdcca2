package models

import (
	"github.com/google/uuid"
)

// GuestOpportunity records a guest-service recovery moment, optionally with
// the compensation offered.
type GuestOpportunity struct {
	BaseUUIDModel
	ShiftID      uuid.UUID `gorm:"type:uuid;not null;index" json:"shiftId"`
	LastName     string    `gorm:"type:text;not null"       json:"lastName"`
	Room         string    `gorm:"type:text;not null"       json:"room"`
	Description  string    `gorm:"type:text;not null"       json:"description"`
	Compensation string    `gorm:"type:text"                json:"compensation"`
}
