package domain

// Suffix appended to number/select prompts so the user knows to reply with a digit
var numericSuffix = map[string]string{
	LanguageArabic: "(أدخل رقما)",
	LanguageFrench: "(Répondez avec un numéro)",
}

// StartOver returns a fresh session and the language prompt.
// Used for the explicit start signal and for every recoverable session anomaly.
func StartOver(userID string) (*Session, Action) {
	return NewSession(userID), LanguagePrompt()
}

// Transition is the flow state machine: given the current session, the incoming
// reply and the question catalog, it computes the next session and the outbound
// action for this turn. It performs no I/O; persistence and delivery are the
// caller's concern.
//
// Session anomalies (unknown language code, index out of range) resolve to a
// restart rather than an error.
func Transition(s *Session, reply string, catalog Catalog) (*Session, Action) {
	next := s.Clone()

	if next.AwaitingLanguage() {
		if !SupportedLanguage(reply) {
			return StartOver(s.UserID)
		}
		next.Language = reply
		next.Answers = make(map[string]string)
		next.AtQuestion = 0
	} else {
		if next.Language == "" {
			return StartOver(s.UserID)
		}
		if next.AtQuestion < 0 || next.AtQuestion >= len(catalog) {
			// The catalog shrank since this session last advanced.
			return StartOver(s.UserID)
		}
		next.Answers[catalog[next.AtQuestion].ID] = reply
		next.AtQuestion++
	}

	// Skip questions whose display condition is not met. A skipped question
	// never receives an answers entry.
	for !next.Completed(catalog) && catalog[next.AtQuestion].ShouldSkip(next.Answers) {
		next.AtQuestion++
	}

	if next.Completed(catalog) {
		return next, Action{Type: ActionSubmit, Answers: next.Answers}
	}
	return next, renderQuestion(catalog[next.AtQuestion], next.Language)
}

// renderQuestion turns a catalog entry into the outbound action for the session's language
func renderQuestion(q Question, lang string) Action {
	text := q.Text(lang)

	if q.Format.Type == QuestionTypeRadio {
		choices := make([]ButtonChoice, 0, len(q.Format.Choices))
		for _, c := range q.Format.Choices {
			choices = append(choices, ButtonChoice{Label: c.Label(lang), Value: c.Value})
		}
		return Action{Type: ActionAskButtons, Text: text, Choices: choices}
	}

	if q.Format.Type == QuestionTypeNumber || q.Format.Type == QuestionTypeSelect {
		text = text + " " + numericSuffix[lang]
	}
	return Action{Type: ActionAskText, Text: text}
}
