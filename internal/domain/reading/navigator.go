package reading

// Navigator walks the three pages of a DailyWindow in order: cover, first
// article page, second article page. Moving past either end is a no-op (the
// UI disables the button instead of wrapping). A fresh navigator always
// starts on the cover; reopening a language resets it.
type Navigator struct {
	window DailyWindow
	pos    int
}

func NewNavigator(w DailyWindow) *Navigator {
	return &Navigator{window: w}
}

func (n *Navigator) CurrentPage() int {
	return n.window.AllowedPages[n.pos]
}

func (n *Navigator) CanNext() bool {
	return n.pos < len(n.window.AllowedPages)-1
}

func (n *Navigator) CanPrevious() bool {
	return n.pos > 0
}

// Next advances one position and returns the new current page.
func (n *Navigator) Next() int {
	if n.CanNext() {
		n.pos++
	}
	return n.CurrentPage()
}

// Previous moves back one position and returns the new current page.
func (n *Navigator) Previous() int {
	if n.CanPrevious() {
		n.pos--
	}
	return n.CurrentPage()
}

// Reset puts the navigator back on the cover page.
func (n *Navigator) Reset() {
	n.pos = 0
}

// Seek moves directly to a page if it belongs to the window; out-of-window
// pages snap back to the cover, mirroring how the PDF viewer is corrected
// after a stray swipe.
func (n *Navigator) Seek(page int) int {
	for i, p := range n.window.AllowedPages {
		if p == page {
			n.pos = i
			return p
		}
	}
	n.pos = 0
	return n.CurrentPage()
}
