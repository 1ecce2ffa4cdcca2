package models

import (
	"github.com/google/uuid"
)

// HighPaw is a staff recognition record; PackMembers lists the recognized
// staff by name.
type HighPaw struct {
	BaseUUIDModel
	ShiftID     uuid.UUID `gorm:"type:uuid;not null;index" json:"shiftId"`
	PackMembers string    `gorm:"type:text;not null"       json:"packMembers"`
	Department  string    `gorm:"type:text;not null"       json:"department"`
	Description string    `gorm:"type:text;not null"       json:"description"`
}
