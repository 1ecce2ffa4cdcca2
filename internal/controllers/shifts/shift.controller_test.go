package shiftController

import (
	"testing"

	. "modreport/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCanEdit(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV7())
	editorID := uuid.Must(uuid.NewV7())
	strangerID := uuid.Must(uuid.NewV7())

	shift := &Shift{
		ModID:   ownerID,
		Editors: []User{{BaseUUIDModel: BaseUUIDModel{ID: editorID}}},
	}

	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"owner", &User{BaseUUIDModel: BaseUUIDModel{ID: ownerID}}, true},
		{"editor", &User{BaseUUIDModel: BaseUUIDModel{ID: editorID}}, true},
		{"admin", &User{BaseUUIDModel: BaseUUIDModel{ID: strangerID}, IsAdmin: true}, true},
		{"stranger", &User{BaseUUIDModel: BaseUUIDModel{ID: strangerID}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.user, shift))
		})
	}
}

func TestCanViewOpenVsClosed(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV7())
	stranger := &User{BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())}}

	open := &Shift{ModID: ownerID, Status: ShiftStatusOpen}
	closed := &Shift{ModID: ownerID, Status: ShiftStatusClosed}

	assert.False(t, CanView(stranger, open))
	assert.True(t, CanView(stranger, closed))
	assert.True(t, CanView(&User{BaseUUIDModel: BaseUUIDModel{ID: ownerID}}, open))
}

func TestBuildFieldUpdatesTextAndClear(t *testing.T) {
	updates, err := buildFieldUpdates(map[string]string{
		"schedule":     "PM",
		"housekeeping": "",
		"shift_notes":  "quiet night",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "PM", updates["schedule"])
	assert.Equal(t, "", updates["housekeeping"])
	assert.Equal(t, "quiet night", updates["shift_notes"])
}

func TestBuildFieldUpdatesIntParsing(t *testing.T) {
	updates, err := buildFieldUpdates(map[string]string{
		"occupancy": "91",
		"nps_score": "",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 91, updates["occupancy"])
	assert.Nil(t, updates["nps_score"])

	_, err = buildFieldUpdates(map[string]string{"arrivals": "many"}, nil)
	assert.Error(t, err)
}

func TestBuildFieldUpdatesTimeParsing(t *testing.T) {
	updates, err := buildFieldUpdates(map[string]string{"pass_down_time": "22:45"}, nil)
	require.NoError(t, err)
	assert.Equal(t, datatypes.NewTime(22, 45, 0, 0), updates["pass_down_time"])

	updates, err = buildFieldUpdates(map[string]string{"pass_down_time": ""}, nil)
	require.NoError(t, err)
	assert.Nil(t, updates["pass_down_time"])

	_, err = buildFieldUpdates(map[string]string{"pass_down_time": "late"}, nil)
	assert.Error(t, err)
}

func TestBuildFieldUpdatesIgnoresUnknownFields(t *testing.T) {
	updates, err := buildFieldUpdates(map[string]string{
		"status": "closed",
		"mod_id": uuid.Must(uuid.NewV7()).String(),
		"csrf":   "token",
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestBuildFieldUpdatesAllowSet(t *testing.T) {
	updates, err := buildFieldUpdates(map[string]string{
		"schedule":  "AM",
		"nps_score": "72",
	}, closingFields)
	require.NoError(t, err)

	assert.NotContains(t, updates, "schedule")
	assert.Equal(t, 72, updates["nps_score"])
}

func TestParseOptionalInt(t *testing.T) {
	value, err := parseOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = parseOptionalInt("250")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 250, *value)

	_, err = parseOptionalInt("full")
	assert.Error(t, err)
}
