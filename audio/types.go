package audio

// SoundType identifies a collision cue family
type SoundType int

const (
	SoundRect SoundType = iota // Overlap with a coloured rect, pitch follows the colour
	SoundChar                  // Overlap with a glyph
	SoundText                  // Overlap with a text letter
	soundTypeCount
)

// String returns the cue name used in config and logs
func (s SoundType) String() string {
	switch s {
	case SoundRect:
		return "rect"
	case SoundChar:
		return "char"
	case SoundText:
		return "text"
	default:
		return "unknown"
	}
}
