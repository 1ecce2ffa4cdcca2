package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Incident struct {
	BaseUUIDModel
	ShiftID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"shiftId"`
	Code         string         `gorm:"type:text;not null"       json:"code"`
	IncidentTime datatypes.Time `gorm:"type:time;not null"       json:"incidentTime"`
	Location     string         `gorm:"type:text;not null"       json:"location"`
	Notes        string         `gorm:"type:text"                json:"notes"`
}
