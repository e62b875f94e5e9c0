package session

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	// TitleMaxRunes caps the title derived from the first prompt.
	TitleMaxRunes = 80
)
