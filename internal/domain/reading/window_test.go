package reading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_WindowForDay_DayOne(t *testing.T) {
	w := WindowForDay(1)
	assert.Equal(t, 1, w.CoverPage)
	assert.Equal(t, 6, w.StartPage)
	assert.Equal(t, 7, w.EndPage)
	assert.Equal(t, 3, w.TotalPages)
	assert.Equal(t, []int{1, 6, 7}, w.AllowedPages)
}

func Test_WindowForDay_ArithmeticProgression(t *testing.T) {
	// startPage = 4 + day*2, endPage = startPage+1, for every day
	for day := 1; day <= 31; day++ {
		w := WindowForDay(day)
		assert.Equal(t, 4+day*2, w.StartPage, "day %d", day)
		assert.Equal(t, w.StartPage+1, w.EndPage, "day %d", day)
		assert.Len(t, w.AllowedPages, 3, "day %d", day)
		assert.Equal(t, 1, w.AllowedPages[0], "day %d", day)
	}
}

func Test_WindowForDay_NoOverlapBetweenDays(t *testing.T) {
	for d1 := 1; d1 <= 28; d1++ {
		for d2 := d1 + 1; d2 <= 28; d2++ {
			w1, w2 := WindowForDay(d1), WindowForDay(d2)
			assert.True(t, w1.EndPage < w2.StartPage || w2.EndPage < w1.StartPage,
				"days %d and %d share article pages", d1, d2)
		}
	}
}

func Test_GetDailyWindow_UsesCalendarDay(t *testing.T) {
	now := time.Date(2025, 3, 17, 9, 30, 0, 0, time.Local)
	w := GetDailyWindow(now)
	assert.Equal(t, 17, w.DayOfMonth)
	assert.Equal(t, 4+17*2, w.StartPage)
}

func Test_IsPageAllowed(t *testing.T) {
	w := WindowForDay(2) // pages 1, 8, 9
	assert.True(t, w.IsPageAllowed(1))
	assert.True(t, w.IsPageAllowed(8))
	assert.True(t, w.IsPageAllowed(9))
	assert.False(t, w.IsPageAllowed(7))
	assert.False(t, w.IsPageAllowed(10))
	assert.False(t, w.IsPageAllowed(0))
}

func Test_PageIndex(t *testing.T) {
	w := WindowForDay(3) // pages 1, 10, 11
	assert.Equal(t, 1, w.PageIndex(1))
	assert.Equal(t, 2, w.PageIndex(10))
	assert.Equal(t, 3, w.PageIndex(11))
	// Defensive fallback for a page outside the window
	assert.Equal(t, 1, w.PageIndex(42))
}

func Test_ReadingProgress(t *testing.T) {
	assert.Equal(t, 50, ReadingProgress(15, 30))
	assert.Equal(t, 3, ReadingProgress(1, 31))
	assert.Equal(t, 100, ReadingProgress(31, 31))
	assert.Equal(t, 0, ReadingProgress(1, 0))
}

func Test_DaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, DaysInMonth(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)))
}

func Test_WindowIsDeterministic(t *testing.T) {
	now := time.Date(2025, 7, 4, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, GetDailyWindow(now), GetDailyWindow(now))
}
