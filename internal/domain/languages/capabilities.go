package languages

// ParseCapabilityFlag is the single contract for the feed's loosely-typed
// capability flags: the string "1", the number 1 and boolean true count as
// enabled, everything else ("0", 0, false, nil, arbitrary strings) as
// disabled.
func ParseCapabilityFlag(raw interface{}) bool {
	switch v := raw.(type) {
	case string:
		return v == "1"
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case bool:
		return v
	default:
		return false
	}
}

// AvailableFormats resolves the stored raw flags of a language.
func AvailableFormats(lang Language) Formats {
	return Formats{
		Read:   ParseCapabilityFlag(lang.RawRead),
		Listen: ParseCapabilityFlag(lang.RawListen),
		Watch:  ParseCapabilityFlag(lang.RawWatch),
	}
}
