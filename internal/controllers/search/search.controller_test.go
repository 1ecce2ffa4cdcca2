package searchController

import (
	"testing"
	"time"

	. "modreport/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFiltersForcesClosedForNonAdmin(t *testing.T) {
	filters, err := buildFilters(&User{}, &SearchRequest{Status: ShiftStatusOpen})
	require.NoError(t, err)
	assert.Equal(t, ShiftStatusClosed, filters.Status)
}

func TestBuildFiltersKeepsStatusForAdmin(t *testing.T) {
	admin := &User{IsAdmin: true}

	filters, err := buildFilters(admin, &SearchRequest{Status: ShiftStatusOpen})
	require.NoError(t, err)
	assert.Equal(t, ShiftStatusOpen, filters.Status)

	_, err = buildFilters(admin, &SearchRequest{Status: "archived"})
	assert.Error(t, err)
}

func TestBuildFiltersParsesDatesAndModID(t *testing.T) {
	modID := uuid.Must(uuid.NewV7())

	filters, err := buildFilters(&User{IsAdmin: true}, &SearchRequest{
		ModID:     modID.String(),
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
	})
	require.NoError(t, err)

	require.NotNil(t, filters.ModID)
	assert.Equal(t, modID, *filters.ModID)
	require.NotNil(t, filters.StartDate)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
	require.NotNil(t, filters.EndDate)
}

func TestBuildFiltersRejectsBadInput(t *testing.T) {
	admin := &User{IsAdmin: true}

	_, err := buildFilters(admin, &SearchRequest{ModID: "not-a-uuid"})
	assert.Error(t, err)

	_, err = buildFilters(admin, &SearchRequest{StartDate: "01/01/2025"})
	assert.Error(t, err)

	_, err = buildFilters(admin, &SearchRequest{EndDate: "yesterday"})
	assert.Error(t, err)
}
