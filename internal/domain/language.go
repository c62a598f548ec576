package domain

import "strings"

// Judge0 language ids for the closed set of supported languages.
const (
	LanguageIDPython     = 71
	LanguageIDJava       = 62
	LanguageIDJavaScript = 63
)

var languageIDByName = map[string]int{
	"PYTHON":     LanguageIDPython,
	"JAVA":       LanguageIDJava,
	"JAVASCRIPT": LanguageIDJavaScript,
}

var languageNameByID = map[int]string{
	LanguageIDPython:     "PYTHON",
	LanguageIDJava:       "JAVA",
	LanguageIDJavaScript: "JAVASCRIPT",
}

// LanguageID resolves a language name (case-insensitive) to its judge
// language id. The second return value is false for unknown languages.
func LanguageID(name string) (int, bool) {
	id, ok := languageIDByName[strings.ToUpper(name)]
	return id, ok
}

// LanguageName returns the display name for a judge language id.
func LanguageName(id int) string {
	if name, ok := languageNameByID[id]; ok {
		return name
	}
	return "UNKNOWN"
}

// SupportedLanguageID reports whether id belongs to the closed language set.
func SupportedLanguageID(id int) bool {
	_, ok := languageNameByID[id]
	return ok
}
