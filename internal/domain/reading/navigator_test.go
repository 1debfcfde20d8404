package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Navigator_StartsOnCover(t *testing.T) {
	n := NewNavigator(WindowForDay(1))
	assert.Equal(t, 1, n.CurrentPage())
	assert.False(t, n.CanPrevious())
	assert.True(t, n.CanNext())
}

func Test_Navigator_WalksForwardAndBack(t *testing.T) {
	n := NewNavigator(WindowForDay(1)) // 1, 6, 7

	assert.Equal(t, 6, n.Next())
	assert.Equal(t, 7, n.Next())
	assert.False(t, n.CanNext())

	assert.Equal(t, 6, n.Previous())
	assert.Equal(t, 1, n.Previous())
	assert.False(t, n.CanPrevious())
}

func Test_Navigator_NoOpAtEdges(t *testing.T) {
	n := NewNavigator(WindowForDay(5))

	// previous from the cover does nothing
	assert.Equal(t, 1, n.Previous())
	assert.Equal(t, 1, n.CurrentPage())

	// next past the last article page does nothing
	n.Next()
	n.Next()
	last := n.CurrentPage()
	assert.Equal(t, last, n.Next())
	assert.Equal(t, last, n.CurrentPage())
}

func Test_Navigator_Reset(t *testing.T) {
	n := NewNavigator(WindowForDay(10))
	n.Next()
	n.Next()
	n.Reset()
	assert.Equal(t, 1, n.CurrentPage())
}

func Test_Navigator_SeekSnapsBackOnStrayPage(t *testing.T) {
	n := NewNavigator(WindowForDay(2)) // 1, 8, 9

	assert.Equal(t, 9, n.Seek(9))
	assert.Equal(t, 9, n.CurrentPage())

	// a swipe landed outside the window: snap to cover
	assert.Equal(t, 1, n.Seek(14))
	assert.Equal(t, 1, n.CurrentPage())
}
