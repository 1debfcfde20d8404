package languages

// Language is one entry of the monthly catalogue. The capability flags arrive
// from the upstream feed loosely typed ("1", 1, true all meaning enabled) and
// are stored raw; ParseCapabilityFlag is the only place that interprets them.
type Language struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Label    string `gorm:"not null;uniqueIndex:idx_languages_label" json:"label"`
	Type     string `gorm:"type:varchar(20);not null;default:'subscription'" json:"type"` // "open" | "subscription"
	FileName string `gorm:"column:file_name;not null" json:"file_name"`

	RawRead   string `gorm:"column:flag_read" json:"-"`
	RawListen string `gorm:"column:flag_listen" json:"-"`
	RawWatch  string `gorm:"column:flag_watch" json:"-"`
}

// Formats a language is published in.
type Formats struct {
	Read   bool `json:"read"`
	Listen bool `json:"listen"`
	Watch  bool `json:"watch"`
}
