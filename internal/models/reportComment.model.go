package models

import (
	"github.com/google/uuid"
)

// ReportComment is an immutable comment on a closed shift report.
type ReportComment struct {
	BaseUUIDModel
	ShiftID  uuid.UUID `gorm:"type:uuid;not null;index" json:"shiftId"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null"       json:"authorId"`
	Author   User      `gorm:"foreignKey:AuthorID"      json:"author"`
	Body     string    `gorm:"type:text;not null"       json:"body"`
}
