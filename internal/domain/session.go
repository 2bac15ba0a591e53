package domain

// StartIndex is the sentinel question index of a session that has not yet
// selected a language.
const StartIndex = -1

// Supported conversation languages
const (
	// LanguageArabic const
	LanguageArabic = "ar"
	// LanguageFrench const
	LanguageFrench = "fr"
)

// SupportedLanguage reports whether code is one of the conversation languages
func SupportedLanguage(code string) bool {
	return code == LanguageArabic || code == LanguageFrench
}

// Session represents per-user conversation progress.
// The JSON shape is the persisted session layout in the TTL store.
type Session struct {
	UserID     string            `json:"-"`
	AtQuestion int               `json:"at_question"`
	Language   string            `json:"lang,omitempty"`
	Answers    map[string]string `json:"answers"`
}

// NewSession creates a fresh session for a user: no language selected,
// question index at the start sentinel, no answers recorded.
func NewSession(userID string) *Session {
	return &Session{
		UserID:     userID,
		AtQuestion: StartIndex,
		Answers:    make(map[string]string),
	}
}

// Clone returns a deep copy of the session so a transition never mutates its input
func (s *Session) Clone() *Session {
	answers := make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	return &Session{
		UserID:     s.UserID,
		AtQuestion: s.AtQuestion,
		Language:   s.Language,
		Answers:    answers,
	}
}

// AwaitingLanguage reports whether the next reply must be a language code
func (s *Session) AwaitingLanguage() bool {
	return s.AtQuestion == StartIndex
}

// Completed reports whether the session has advanced past the last catalog entry
func (s *Session) Completed(catalog Catalog) bool {
	return s.AtQuestion >= len(catalog)
}
