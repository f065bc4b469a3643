package models

// TargetType identifies the collection a comment or feedback entry points to
type TargetType string

const (
	TargetTypePassage    TargetType = "passage"
	TargetTypeVocabulary TargetType = "vocabulary"
	TargetTypeWriting    TargetType = "writing"
	TargetTypeSpeaking   TargetType = "speaking"
)

// IsValid reports whether t is a known target type
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypePassage, TargetTypeVocabulary, TargetTypeWriting, TargetTypeSpeaking:
		return true
	}
	return false
}
