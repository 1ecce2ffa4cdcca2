package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ShiftStatusOpen   = "open"
	ShiftStatusClosed = "closed"
)

type Shift struct {
	BaseUUIDModel
	ModID uuid.UUID      `gorm:"type:uuid;not null;index" json:"modId"`
	Mod   User           `gorm:"foreignKey:ModID"         json:"mod"`
	Date  datatypes.Date `gorm:"type:date;not null"       json:"date"`
	// Schedule is the working session label, e.g. "AM", "PM", "Overnight".
	Schedule string `gorm:"type:text;not null" json:"schedule"`
	// Status is monotonic: open shifts close, closed shifts never reopen.
	Status string `gorm:"type:text;not null;default:open;index" json:"status"`

	Occupancy  *int `gorm:"type:int" json:"occupancy"`
	Arrivals   *int `gorm:"type:int" json:"arrivals"`
	Departures *int `gorm:"type:int" json:"departures"`

	// Department staffing snapshot, free text per department.
	GMAGM             string `gorm:"column:gm_agm;type:text" json:"gmAgm"`
	Housekeeping      string `gorm:"type:text"               json:"housekeeping"`
	FoodBeverage      string `gorm:"type:text"               json:"foodBeverage"`
	Sales             string `gorm:"type:text"               json:"sales"`
	Aquatics          string `gorm:"type:text"               json:"aquatics"`
	RetailAttractions string `gorm:"type:text"               json:"retailAttractions"`
	KidsEntertainment string `gorm:"type:text"               json:"kidsEntertainment"`
	GuestServices     string `gorm:"type:text"               json:"guestServices"`
	HR                string `gorm:"column:hr;type:text"     json:"hr"`
	Finance           string `gorm:"type:text"               json:"finance"`
	Engineering       string `gorm:"type:text"               json:"engineering"`
	IT                string `gorm:"column:it;type:text"     json:"it"`

	// Closing fields, meaningful once Status is closed.
	NPSScore         *int            `gorm:"column:nps_score;type:int" json:"npsScore"`
	NPSRank          *int            `gorm:"column:nps_rank;type:int"  json:"npsRank"`
	QualityAssurance string          `gorm:"type:text"                 json:"qualityAssurance"`
	Suggestions      string          `gorm:"type:text"                 json:"suggestions"`
	ShiftNotes       string          `gorm:"type:text"                 json:"shiftNotes"`
	PassDownTime     *datatypes.Time `gorm:"type:time"                 json:"passDownTime"`
	PassDownNextMod  string          `gorm:"type:text"                 json:"passDownNextMod"`
	PassDownNotes    string          `gorm:"type:text"                 json:"passDownNotes"`

	Incidents          []Incident         `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"incidents,omitempty"`
	Downtimes          []Downtime         `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"downtimes,omitempty"`
	GuestOpportunities []GuestOpportunity `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"guestOpportunities,omitempty"`
	RoomInspections    []RoomInspection   `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"roomInspections,omitempty"`
	OutletInspections  []OutletInspection `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"outletInspections,omitempty"`
	HighPaws           []HighPaw          `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"highPaws,omitempty"`
	ModMeals           []ModMeal          `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"modMeals,omitempty"`
	Comments           []ReportComment    `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`

	Editors []User `gorm:"many2many:shift_editors" json:"editors,omitempty"`
}

func (s *Shift) IsOpen() bool {
	return s.Status == ShiftStatusOpen
}

func (s *Shift) IsClosed() bool {
	return s.Status == ShiftStatusClosed
}

// IsEditor reports whether the user is a registered secondary editor. The
// primary MOD is not an editor in this sense.
func (s *Shift) IsEditor(userID uuid.UUID) bool {
	for _, editor := range s.Editors {
		if editor.ID == userID {
			return true
		}
	}
	return false
}
