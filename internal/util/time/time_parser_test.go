package time_parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseDate_WithValidDate_ReturnsMidnightUTC(t *testing.T) {
	result, err := ParseDate("2025-03-02")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), result)
}

func Test_ParseDate_WithInvalidDate_ReturnsError(t *testing.T) {
	_, err := ParseDate("03/02/2025")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func Test_ParseDateClock_WithValidInput_CombinesDateAndClock(t *testing.T) {
	result, err := ParseDateClock("2025-03-02", "09:30")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC), result)
}

func Test_ParseDateClock_WithInvalidClock_ReturnsError(t *testing.T) {
	_, err := ParseDateClock("2025-03-02", "9:30pm")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")
}
