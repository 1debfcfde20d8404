package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildReadURL(t *testing.T) {
	assert.Equal(t,
		"https://assets.example.com/read/June%202025%20Yoruba.pdf",
		BuildReadURL("https://assets.example.com", "June 2025 Yoruba.pdf"))

	// trailing slash on the base does not double up
	assert.Equal(t,
		"https://assets.example.com/read/zulu.pdf",
		BuildReadURL("https://assets.example.com/", "zulu.pdf"))
}
