package reading

import (
	"net/http"
	"time"

	"rhapsody-languages/config"
	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/access"
	"rhapsody-languages/internal/domain/assets"
	"rhapsody-languages/internal/domain/languages"
	"rhapsody-languages/internal/domain/reading"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type TodayResponse struct {
	Language string              `json:"language"`
	ReadURL  string              `json:"read_url"`
	Window   reading.DailyWindow `json:"window"`
	Progress int                 `json:"progress"`
}

func loadLanguageForUser(c *gin.Context) (languages.Language, users.User, bool) {
	email := c.GetString("email")
	var user users.User
	if err := database.DB.Preload("Plan").Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return languages.Language{}, users.User{}, false
	}

	var lang languages.Language
	if err := database.DB.Where("label = ?", c.Param("label")).First(&lang).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Language not found"})
		return languages.Language{}, users.User{}, false
	}
	return lang, user, true
}

// GET /languages/:label/today — today's page window inside the shared
// monthly document. Denied languages get the full decision back so the app
// can render the call-to-action; the window itself is never exposed.
func GetToday(c *gin.Context) {
	lang, user, ok := loadLanguageForUser(c)
	if !ok {
		return
	}

	now := time.Now()
	decision := access.DecisionFor(now, user, lang)
	if !decision.HasAccess {
		c.JSON(http.StatusForbidden, gin.H{"access": decision})
		return
	}

	window := reading.GetDailyWindow(now)

	c.JSON(http.StatusOK, TodayResponse{
		Language: lang.Label,
		ReadURL:  assets.BuildReadURL(config.ASSET_BASE_URL, lang.FileName),
		Window:   window,
		Progress: reading.ReadingProgress(window.DayOfMonth, reading.DaysInMonth(now)),
	})
}

// POST /languages/:label/pages/validate — the PDF viewer reports a page
// change (often a stray swipe); we answer whether it is inside today's
// window and where to snap back otherwise.
func ValidatePage(c *gin.Context) {
	lang, user, ok := loadLanguageForUser(c)
	if !ok {
		return
	}

	var body struct {
		Page int `json:"page" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid page"})
		return
	}

	now := time.Now()
	decision := access.DecisionFor(now, user, lang)
	if !decision.HasAccess {
		c.JSON(http.StatusForbidden, gin.H{"access": decision})
		return
	}

	window := reading.GetDailyWindow(now)
	allowed := window.IsPageAllowed(body.Page)

	resp := gin.H{
		"allowed":    allowed,
		"page_index": window.PageIndex(body.Page),
	}
	if !allowed {
		// Snap the viewer back to the start of the window.
		resp["snap_to"] = window.AllowedPages[0]
	}

	c.JSON(http.StatusOK, resp)
}
