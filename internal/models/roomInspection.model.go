package models

import (
	"github.com/google/uuid"
)

type RoomInspection struct {
	BaseUUIDModel
	ShiftID       uuid.UUID `gorm:"type:uuid;not null;index" json:"shiftId"`
	RoomNumber    string    `gorm:"type:text;not null"       json:"roomNumber"`
	RoomType      string    `gorm:"type:text;not null"       json:"roomType"`
	Successes     string    `gorm:"type:text"                json:"successes"`
	Opportunities string    `gorm:"type:text"                json:"opportunities"`
}
