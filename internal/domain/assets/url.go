package assets

import (
	"net/url"
	"strings"
)

// BuildReadURL addresses the shared monthly document for a language:
// {baseUrl}/read/{url-encoded file_name}. The file name comes straight from
// the catalogue feed and may contain spaces.
func BuildReadURL(baseURL, fileName string) string {
	return strings.TrimRight(baseURL, "/") + "/read/" + url.PathEscape(fileName)
}
