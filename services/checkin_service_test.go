package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 19, 30, 0, 0, time.Local)

	// first ever check-in
	assert.Equal(t, 1, NextStreak(0, time.Time{}, now))

	// second check-in the same day keeps the streak
	sameDay := time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	assert.Equal(t, 3, NextStreak(3, sameDay, now))

	// consecutive day extends it
	yesterday := time.Date(2025, 6, 9, 23, 50, 0, 0, time.Local)
	assert.Equal(t, 4, NextStreak(3, yesterday, now))

	// a gap resets to 1
	twoDaysAgo := time.Date(2025, 6, 8, 12, 0, 0, 0, time.Local)
	assert.Equal(t, 1, NextStreak(3, twoDaysAgo, now))

	// time of day within the days doesn't matter
	lateYesterday := time.Date(2025, 6, 9, 0, 5, 0, 0, time.Local)
	assert.Equal(t, 8, NextStreak(7, lateYesterday, now))
}
