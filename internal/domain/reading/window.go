package reading

import (
	"math"
	"time"
)

// Page layout contract with the externally-produced monthly PDF: cover plus
// front matter occupy pages 1-5, then two article pages per day starting with
// day 1 at page 6. Changing these constants changes which pages every user
// sees, so treat them as part of the document format.
const (
	CoverPage                = 1
	ArticlePagesPerDay       = 2
	ArticleFirstDayStartPage = 6

	// The UI always presents exactly cover + the day's two article pages.
	WindowTotalPages = 3
)

// DailyWindow addresses "today's reading" inside the shared monthly asset.
// Computed fresh from the wall clock on every screen load, never persisted,
// identical for every user on the same calendar day.
type DailyWindow struct {
	DayOfMonth   int   `json:"day_of_month"`
	CoverPage    int   `json:"cover_page"`
	StartPage    int   `json:"start_page"`
	EndPage      int   `json:"end_page"`
	TotalPages   int   `json:"total_pages"`
	AllowedPages []int `json:"allowed_pages"`
}

// WindowForDay maps a 1-based day of month onto its page window.
func WindowForDay(dayOfMonth int) DailyWindow {
	start := ArticleFirstDayStartPage + (dayOfMonth-1)*ArticlePagesPerDay
	end := start + 1
	return DailyWindow{
		DayOfMonth:   dayOfMonth,
		CoverPage:    CoverPage,
		StartPage:    start,
		EndPage:      end,
		TotalPages:   WindowTotalPages,
		AllowedPages: []int{CoverPage, start, end},
	}
}

// GetDailyWindow computes the window for the local calendar day of now.
func GetDailyWindow(now time.Time) DailyWindow {
	return WindowForDay(now.Day())
}

// IsPageAllowed reports whether a viewer-reported page belongs to the day's
// window. Used to reject swipe gestures that escape the window and to snap
// the viewer back to AllowedPages[0].
func (w DailyWindow) IsPageAllowed(page int) bool {
	for _, p := range w.AllowedPages {
		if p == page {
			return true
		}
	}
	return false
}

// PageIndex returns the 1-based position of page within the window, with a
// fallback of 1 when the page is not part of the window at all.
func (w DailyWindow) PageIndex(page int) int {
	for i, p := range w.AllowedPages {
		if p == page {
			return i + 1
		}
	}
	return 1
}

// ReadingProgress is the month progress percentage shown under the progress
// bar: round(day/days*100).
func ReadingProgress(dayOfMonth, daysInMonth int) int {
	if daysInMonth <= 0 {
		return 0
	}
	return int(math.Round(float64(dayOfMonth) / float64(daysInMonth) * 100))
}

// DaysInMonth for the month containing t, per the local calendar.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
