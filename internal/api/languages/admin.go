package languages

import (
	"net/http"

	"rhapsody-languages/database"
	"rhapsody-languages/internal/domain/languages"

	"github.com/gin-gonic/gin"
)

// The monthly catalogue feed is loosely typed: capability flags arrive as
// "1", 1 or true. They are normalized here, at the ingestion boundary, so
// nothing downstream ever sees a raw flag.
type catalogueEntry struct {
	Label    string      `json:"label" binding:"required"`
	Type     string      `json:"type" binding:"required"`
	FileName string      `json:"file_name" binding:"required"`
	Read     interface{} `json:"read"`
	Listen   interface{} `json:"listen"`
	Watch    interface{} `json:"watch"`
}

func normalizeFlag(raw interface{}) string {
	if languages.ParseCapabilityFlag(raw) {
		return "1"
	}
	return "0"
}

// POST /admin/languages — upsert the month's catalogue.
func UpsertLanguages(c *gin.Context) {
	var body struct {
		Languages []catalogueEntry `json:"languages" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := 0
	updated := 0
	for _, entry := range body.Languages {
		if entry.Type != "open" && entry.Type != "subscription" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type for " + entry.Label})
			return
		}

		lang := languages.Language{
			Label:     entry.Label,
			Type:      entry.Type,
			FileName:  entry.FileName,
			RawRead:   normalizeFlag(entry.Read),
			RawListen: normalizeFlag(entry.Listen),
			RawWatch:  normalizeFlag(entry.Watch),
		}

		var existing languages.Language
		if err := database.DB.Where("label = ?", entry.Label).First(&existing).Error; err != nil {
			if err := database.DB.Create(&lang).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + entry.Label})
				return
			}
			created++
		} else {
			lang.ID = existing.ID
			if err := database.DB.Save(&lang).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + entry.Label})
				return
			}
			updated++
		}
	}

	c.JSON(http.StatusOK, gin.H{"created": created, "updated": updated})
}
