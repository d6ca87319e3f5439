package assistant

import "strings"

// Language is the reply-language policy resolved per request: a display name
// plus the strict generation instruction embedded into the system prompt.
type Language struct {
	Code string
	Name string
	Rule string
}

var defaultLanguage = Language{
	Code: "en",
	Name: "English",
	Rule: "Write ONLY in English.",
}

// Loaded once, never mutated at runtime.
var languages = map[string]Language{
	"en": defaultLanguage,
	"te": {"te", "Telugu", "Write ONLY in Telugu language using Telugu script (తెలుగు అక్షరాలు మాత్రమే). Do NOT use English words unless necessary for medicine names."},
	"hi": {"hi", "Hindi", "Write ONLY in Hindi using Devanagari script (हिंदी में ही). Do NOT use English words unless necessary for medicine names."},
	"ta": {"ta", "Tamil", "Write ONLY in Tamil using Tamil script."},
	"kn": {"kn", "Kannada", "Write ONLY in Kannada using Kannada script."},
	"ml": {"ml", "Malayalam", "Write ONLY in Malayalam using Malayalam script."},
	"mr": {"mr", "Marathi", "Write ONLY in Marathi using Devanagari script."},
	"bn": {"bn", "Bengali", "Write ONLY in Bengali using Bengali script."},
	"gu": {"gu", "Gujarati", "Write ONLY in Gujarati using Gujarati script."},
	"ur": {"ur", "Urdu", "Write ONLY in Urdu using Urdu script."},
}

// ResolveLanguage maps a language code to its policy. Unknown, empty or
// garbage codes fall back to English; this never fails.
func ResolveLanguage(code string) Language {
	lang, ok := languages[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return defaultLanguage
	}
	return lang
}
