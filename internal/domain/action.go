package domain

// ActionType represents the kind of outbound action computed for one turn
type ActionType string

const (
	// ActionAskButtons - Ask a quick-reply choice question
	ActionAskButtons ActionType = "ask_buttons"
	// ActionAskText - Ask a plain text question
	ActionAskText ActionType = "ask_text"
	// ActionSubmit - Submit the collected answers to the scoring service
	ActionSubmit ActionType = "submit"
	// ActionNone - Nothing to send this turn
	ActionNone ActionType = "none"
)

// ButtonChoice struct - One rendered quick-reply option
type ButtonChoice struct {
	Label string
	Value string
}

// Action represents the single next thing to send to the user, computed per turn
type Action struct {
	Type    ActionType
	Text    string
	Choices []ButtonChoice
	Answers map[string]string
}

// LanguagePrompt returns the two-language selection question sent on every restart
func LanguagePrompt() Action {
	return Action{
		Type: ActionAskButtons,
		Text: "Choisissez votre langue - اختر لغتك",
		Choices: []ButtonChoice{
			{Label: "العربية", Value: LanguageArabic},
			{Label: "Français", Value: LanguageFrench},
		},
	}
}
