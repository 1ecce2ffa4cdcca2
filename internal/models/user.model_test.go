package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLocationResolvesValidZone(t *testing.T) {
	user := &User{Timezone: "America/Chicago"}
	assert.Equal(t, "America/Chicago", user.Location().String())
}

func TestLocationFallsBackToUTC(t *testing.T) {
	for _, timezone := range []string{"", "Not/AZone", "central"} {
		user := &User{Timezone: timezone}
		assert.Equal(t, time.UTC, user.Location(), "timezone %q", timezone)
	}
}

func TestToProfileOmitsPasswordHash(t *testing.T) {
	user := &User{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		Name:          "Dana Reyes",
		Email:         "dana@example.com",
		PasswordHash:  "$2a$10$abcdefghijklmnopqrstuv",
		JobTitle:      "Front Office Manager",
		IsAdmin:       true,
	}

	profile := user.ToProfile()
	assert.Equal(t, user.ID.String(), profile.ID)
	assert.Equal(t, "Dana Reyes", profile.Name)
	assert.True(t, profile.IsAdmin)
}

func TestShiftStatusHelpers(t *testing.T) {
	shift := &Shift{Status: ShiftStatusOpen}
	assert.True(t, shift.IsOpen())
	assert.False(t, shift.IsClosed())

	shift.Status = ShiftStatusClosed
	assert.True(t, shift.IsClosed())
	assert.False(t, shift.IsOpen())
}

func TestIsEditorExcludesPrimaryMod(t *testing.T) {
	modID := uuid.Must(uuid.NewV7())
	editorID := uuid.Must(uuid.NewV7())

	shift := &Shift{
		ModID:   modID,
		Editors: []User{{BaseUUIDModel: BaseUUIDModel{ID: editorID}}},
	}

	assert.True(t, shift.IsEditor(editorID))
	assert.False(t, shift.IsEditor(modID))
	assert.False(t, shift.IsEditor(uuid.Must(uuid.NewV7())))
}
