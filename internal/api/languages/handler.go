package languages

import (
	"net/http"
	"time"

	"rhapsody-languages/config"
	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/access"
	"rhapsody-languages/internal/domain/assets"
	"rhapsody-languages/internal/domain/languages"
	"rhapsody-languages/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (users.User, bool) {
	email := c.GetString("email")
	var user users.User
	if err := database.DB.Preload("Plan").Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return users.User{}, false
	}
	return user, true
}

// GET /languages — the catalogue with one access decision per entry, so the
// app knows which button to render without re-deriving entitlement rules.
func ListLanguages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var catalogue []languages.Language
	if err := database.DB.Order("label ASC").Find(&catalogue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load languages"})
		return
	}

	now := time.Now()
	out := make([]LanguageDTO, 0, len(catalogue))
	for _, lang := range catalogue {
		out = append(out, LanguageDTO{
			Label:    lang.Label,
			Type:     lang.Type,
			FileName: lang.FileName,
			Formats:  languages.AvailableFormats(lang),
			Access:   access.DecisionFor(now, user, lang),
		})
	}

	c.JSON(http.StatusOK, gin.H{"languages": out})
}

// GET /languages/:label
func GetLanguage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var lang languages.Language
	if err := database.DB.Where("label = ?", c.Param("label")).First(&lang).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Language not found"})
		return
	}

	decision := access.DecisionFor(time.Now(), user, lang)

	dto := LanguageDetailDTO{
		LanguageDTO: LanguageDTO{
			Label:    lang.Label,
			Type:     lang.Type,
			FileName: lang.FileName,
			Formats:  languages.AvailableFormats(lang),
			Access:   decision,
		},
	}
	if decision.HasAccess {
		dto.ReadURL = assets.BuildReadURL(config.ASSET_BASE_URL, lang.FileName)
	}

	c.JSON(http.StatusOK, dto)
}
