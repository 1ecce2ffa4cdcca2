package models

import (
	"time"
)

type User struct {
	BaseUUIDModel
	Name         string `gorm:"type:text;not null"            json:"name"`
	Email        string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:text;not null"            json:"-"`
	JobTitle     string `gorm:"type:text"                     json:"jobTitle"`
	// Timezone is an IANA zone name; empty means UTC.
	Timezone string `gorm:"type:text"               json:"timezone"`
	IsAdmin  bool   `gorm:"type:bool;default:false" json:"isAdmin"`

	Shifts         []Shift `gorm:"foreignKey:ModID"                json:"shifts,omitempty"`
	EditableShifts []Shift `gorm:"many2many:shift_editors"         json:"-"`
}

// UserProfile is the public representation of a user.
type UserProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JobTitle string `json:"jobTitle"`
	Timezone string `json:"timezone"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		JobTitle: u.JobTitle,
		Timezone: u.Timezone,
		IsAdmin:  u.IsAdmin,
	}
}

// Location resolves the user's timezone preference, falling back to UTC when
// the stored name is empty or invalid.
func (u *User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
