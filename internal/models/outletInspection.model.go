package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutletInspection struct {
	BaseUUIDModel
	ShiftID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"shiftId"`
	Outlet         string         `gorm:"type:text;not null"       json:"outlet"`
	InspectionTime datatypes.Time `gorm:"type:time;not null"       json:"inspectionTime"`
	Successes      string         `gorm:"type:text"                json:"successes"`
	Opportunities  string         `gorm:"type:text"                json:"opportunities"`
}
