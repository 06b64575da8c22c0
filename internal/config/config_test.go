package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-timezones/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ConfigDirName", config.ConfigDirName},
		{"CitiesFileName", config.CitiesFileName},
		{"PidFileName", config.PidFileName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 2, config.MinQueryLength, "Search must ignore queries shorter than two runes")
	assert.Greater(t, config.MaxSearchResults, 0)
	assert.Greater(t, config.UpdateInterval, 0*time.Second)
}

// TestOffsetBounds verifies the time-travel clamp window is a symmetric ±24h.
func TestOffsetBounds(t *testing.T) {
	assert.Equal(t, -1440, config.OffsetMinMinutes)
	assert.Equal(t, 1440, config.OffsetMaxMinutes)
	assert.Equal(t, config.OffsetMaxMinutes, -config.OffsetMinMinutes, "Clamp window must be symmetric")
}

// TestDayWindow ensures the day/night approximation window stays in order.
func TestDayWindow(t *testing.T) {
	assert.Less(t, config.DayStartHour, config.DayEndHour)
	assert.GreaterOrEqual(t, config.DayStartHour, 0)
	assert.LessOrEqual(t, config.DayEndHour, 24)

	// The gradient strip must divide the day evenly.
	assert.Equal(t, 0, (config.GradientSegments*config.MinutesPerDay)%config.GradientSegments)
	assert.Greater(t, config.GradientSegments, 0)
}
