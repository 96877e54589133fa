package quizai

import "github.com/pemistahl/lingua-go"

var promptLanguageDetector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(lingua.Vietnamese, lingua.English).
	Build()

// DetectPromptLanguage guesses whether a prompt is Vietnamese or English so
// a request without an explicit language hint still carries one. Vietnamese
// is the default when detection is unsure.
func DetectPromptLanguage(prompt string) string {
	if lang, ok := promptLanguageDetector.DetectLanguageOf(prompt); ok && lang == lingua.English {
		return "en"
	}
	return "vi"
}
