package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseCapabilityFlag(t *testing.T) {
	enabled := []interface{}{"1", 1, int64(1), float64(1), true}
	for _, v := range enabled {
		assert.True(t, ParseCapabilityFlag(v), "%#v should be enabled", v)
	}

	disabled := []interface{}{"0", 0, int64(0), float64(0), false, nil, "", "true", "yes", "2", 2, 1.5, []string{"1"}}
	for _, v := range disabled {
		assert.False(t, ParseCapabilityFlag(v), "%#v should be disabled", v)
	}
}

func Test_AvailableFormats(t *testing.T) {
	lang := Language{RawRead: "1", RawListen: "0", RawWatch: "garbage"}
	f := AvailableFormats(lang)
	assert.True(t, f.Read)
	assert.False(t, f.Listen)
	assert.False(t, f.Watch)
}
