package models

import (
	"github.com/google/uuid"
)

// ModMeal is the MOD's meal feedback for an outlet visit during the shift.
type ModMeal struct {
	BaseUUIDModel
	ShiftID  uuid.UUID `gorm:"type:uuid;not null;index" json:"shiftId"`
	Outlet   string    `gorm:"type:text;not null"       json:"outlet"`
	MenuItem string    `gorm:"type:text;not null"       json:"menuItem"`
	Feedback string    `gorm:"type:text"                json:"feedback"`
}
