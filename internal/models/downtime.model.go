package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Downtime struct {
	BaseUUIDModel
	ShiftID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"shiftId"`
	Outlet    string          `gorm:"type:text;not null"       json:"outlet"`
	StartTime datatypes.Time  `gorm:"type:time;not null"       json:"startTime"`
	EndTime   *datatypes.Time `gorm:"type:time"                json:"endTime"`
	Reason    string          `gorm:"type:text;not null"       json:"reason"`
}
