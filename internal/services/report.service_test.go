package services

import (
	"testing"
	"time"

	. "modreport/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func buildReportShift() *Shift {
	occupancy := 87
	passDown := datatypes.NewTime(23, 30, 0, 0)

	return &Shift{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		Mod:           User{Name: "Dana Reyes"},
		Date:          datatypes.Date(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)),
		Schedule:      "PM",
		Status:        ShiftStatusClosed,
		Occupancy:     &occupancy,
		Housekeeping:  "Maria, full crew",
		PassDownTime:  &passDown,
		Incidents: []Incident{
			{Code: "MED-1", IncidentTime: datatypes.NewTime(14, 5, 0, 0), Location: "Lobby"},
		},
		Comments: []ReportComment{
			{
				BaseUUIDModel: BaseUUIDModel{CreatedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)},
				Author:        User{Name: "Alex Kim"},
				Body:          "Great handling of the lobby incident",
			},
		},
	}
}

func TestRenderWebIncludesCommentsAndForm(t *testing.T) {
	service := NewReportService()
	viewer := &User{Timezone: "America/Chicago"}

	html, err := service.RenderWeb(buildReportShift(), viewer, true)
	require.NoError(t, err)

	assert.Contains(t, html, "Dana Reyes")
	assert.Contains(t, html, "June 14, 2025")
	assert.Contains(t, html, "MED-1")
	assert.Contains(t, html, "14:05")
	assert.Contains(t, html, "23:30")
	assert.Contains(t, html, "Great handling of the lobby incident")
	assert.Contains(t, html, "Add Comment")
	// Chicago is UTC-5 in June
	assert.Contains(t, html, "Jun 15, 2025 07:00")
}

func TestRenderWebWithoutCommentPermission(t *testing.T) {
	service := NewReportService()

	html, err := service.RenderWeb(buildReportShift(), &User{}, false)
	require.NoError(t, err)

	assert.Contains(t, html, "Great handling of the lobby incident")
	assert.NotContains(t, html, "Add Comment")
}

func TestRenderStaticOmitsComments(t *testing.T) {
	service := NewReportService()

	html, err := service.RenderStatic(buildReportShift(), &User{})
	require.NoError(t, err)

	assert.NotContains(t, html, "Great handling of the lobby incident")
	assert.NotContains(t, html, "Add Comment")
	assert.Contains(t, html, "Housekeeping")
}

func TestRenderFallsBackToUTCForInvalidTimezone(t *testing.T) {
	service := NewReportService()
	viewer := &User{Timezone: "Not/AZone"}

	html, err := service.RenderWeb(buildReportShift(), viewer, false)
	require.NoError(t, err)

	assert.Contains(t, html, "Jun 15, 2025 12:00")
}

func TestRenderSkipsEmptyDepartments(t *testing.T) {
	service := NewReportService()
	shift := buildReportShift()

	html, err := service.RenderStatic(shift, &User{})
	require.NoError(t, err)

	assert.Contains(t, html, "Housekeeping")
	assert.NotContains(t, html, "Engineering")
}
