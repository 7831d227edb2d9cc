package transcriber

import "strings"

// languageCodes maps the language names Whisper accepts to ISO-639-1.
var languageCodes = map[string]string{
	"english":    "en",
	"chinese":    "zh",
	"german":     "de",
	"spanish":    "es",
	"russian":    "ru",
	"korean":     "ko",
	"french":     "fr",
	"japanese":   "ja",
	"portuguese": "pt",
	"turkish":    "tr",
	"polish":     "pl",
	"catalan":    "ca",
	"dutch":      "nl",
	"arabic":     "ar",
	"swedish":    "sv",
	"italian":    "it",
	"indonesian": "id",
	"hindi":      "hi",
	"finnish":    "fi",
	"vietnamese": "vi",
	"hebrew":     "he",
	"ukrainian":  "uk",
	"greek":      "el",
	"malay":      "ms",
	"czech":      "cs",
	"romanian":   "ro",
	"danish":     "da",
	"hungarian":  "hu",
	"tamil":      "ta",
	"norwegian":  "no",
	"thai":       "th",
}

// languageCode returns the ISO-639-1 code for a language name or code.
// Unknown values are passed through lower-cased.
func languageCode(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if code, ok := languageCodes[lang]; ok {
		return code
	}
	return lang
}
