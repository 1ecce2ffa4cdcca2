package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
		expected    datatypes.Time
	}{
		{
			name:     "Valid morning time",
			value:    "08:30",
			expected: datatypes.NewTime(8, 30, 0, 0),
		},
		{
			name:     "Valid evening time",
			value:    "23:59",
			expected: datatypes.NewTime(23, 59, 0, 0),
		},
		{
			name:     "Midnight",
			value:    "00:00",
			expected: datatypes.NewTime(0, 0, 0, 0),
		},
		{
			name:     "Leading whitespace",
			value:    " 14:05",
			expected: datatypes.NewTime(14, 5, 0, 0),
		},
		{
			name:        "Missing minutes",
			value:       "14",
			expectError: true,
		},
		{
			name:        "Hour out of range",
			value:       "24:00",
			expectError: true,
		},
		{
			name:        "Minute out of range",
			value:       "12:60",
			expectError: true,
		},
		{
			name:        "Not numeric",
			value:       "ab:cd",
			expectError: true,
		},
		{
			name:        "Empty string",
			value:       "",
			expectError: true,
		},
		{
			name:        "Seconds not accepted",
			value:       "12:30:45",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeOfDay(tt.value)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "08:30", FormatTimeOfDay(datatypes.NewTime(8, 30, 0, 0)))
	assert.Equal(t, "23:05", FormatTimeOfDay(datatypes.NewTime(23, 5, 0, 0)))
	assert.Equal(t, "00:00", FormatTimeOfDay(datatypes.NewTime(0, 0, 0, 0)))
}
