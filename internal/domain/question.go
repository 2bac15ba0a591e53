package domain

// QuestionType represents the answer format of a question
type QuestionType string

const (
	// QuestionTypeRadio - Quick-reply choice question
	QuestionTypeRadio QuestionType = "radio"
	// QuestionTypeNumber - Free-text question expecting a number
	QuestionTypeNumber QuestionType = "number"
	// QuestionTypeSelect - Free-text question expecting a numeric choice
	QuestionTypeSelect QuestionType = "select"
	// QuestionTypeText - Plain free-text question
	QuestionTypeText QuestionType = "text"
)

// Choice represents one selectable option of a radio question.
// Labels are localized; Value is the language-independent payload recorded as the answer.
type Choice struct {
	LabelAr string `json:"label_ar"`
	LabelFr string `json:"label_fr"`
	Value   string `json:"value"`
}

// Label returns the choice label for the given language code
func (c Choice) Label(lang string) string {
	if lang == LanguageArabic {
		return c.LabelAr
	}
	return c.LabelFr
}

// QuestionFormat struct - answer format of a question, with choices for radio questions
type QuestionFormat struct {
	Type    QuestionType `json:"type"`
	Choices []Choice     `json:"choices,omitempty"`
}

// Question struct - Core domain entity, one entry of the remote question catalog.
// The JSON shape mirrors the questions service payload.
type Question struct {
	ID     string         `json:"id"`
	Key    string         `json:"key,omitempty"`
	TextAr string         `json:"text_ar"`
	TextFr string         `json:"text_fr"`
	Format QuestionFormat `json:"format"`

	// A question with DependsOnQuestion set is only presented when the
	// recorded answer for that question equals DependsOnValue.
	DependsOnQuestion string `json:"depends_on_question,omitempty"`
	DependsOnValue    string `json:"depends_on_question_value,omitempty"`
}

// Text returns the localized prompt text for the given language code
func (q Question) Text(lang string) string {
	if lang == LanguageArabic {
		return q.TextAr
	}
	return q.TextFr
}

// SubmitKey returns the field key the scoring service expects for this question
func (q Question) SubmitKey() string {
	if q.Key != "" {
		return q.Key
	}
	return q.ID
}

// ShouldSkip reports whether this question must be bypassed given the answers
// recorded so far. A question without a dependency is never skipped.
func (q Question) ShouldSkip(answers map[string]string) bool {
	if q.DependsOnQuestion == "" {
		return false
	}
	return answers[q.DependsOnQuestion] != q.DependsOnValue
}

// Catalog is the ordered list of question definitions; order defines traversal order
type Catalog []Question

// ByID returns the question with the given id
func (c Catalog) ByID(id string) (Question, bool) {
	for _, q := range c {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
