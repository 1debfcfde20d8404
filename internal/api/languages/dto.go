package languages

import (
	"rhapsody-languages/internal/domain/access"
	"rhapsody-languages/internal/domain/languages"
)

type LanguageDTO struct {
	Label    string                `json:"label"`
	Type     string                `json:"type"`
	FileName string                `json:"file_name"`
	Formats  languages.Formats     `json:"formats"`
	Access   access.AccessDecision `json:"access"`
}

type LanguageDetailDTO struct {
	LanguageDTO
	ReadURL string `json:"read_url"`
}
