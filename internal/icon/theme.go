package icon

import "strings"

// Theme identifies one of the built-in icon styles.
type Theme string

const (
	ThemeTikTok     Theme = "tiktok"
	ThemeFileCity   Theme = "file-city"
	ThemePokemon    Theme = "pokemon"
	ThemeIMessage   Theme = "imessage"
	ThemeRust       Theme = "rust"
	ThemePython     Theme = "python"
	ThemeIOS        Theme = "ios"
	ThemeAI         Theme = "ai"
	ThemeFinance    Theme = "finance"
	ThemeRealEstate Theme = "real-estate"
	ThemeAudio      Theme = "audio"
	ThemeCamera     Theme = "camera"
	ThemeWeb        Theme = "web"
	ThemeDefault    Theme = "default"
)

// themeTrigger pairs a theme with the keywords that activate it. The slice
// order is the match priority: the first theme with any keyword contained in
// the lowercased seed text wins.
type themeTrigger struct {
	theme    Theme
	keywords []string
}

var themeTriggers = []themeTrigger{
	{ThemeTikTok, []string{"tiktok"}},
	{ThemeFileCity, []string{"file-city", "file city"}},
	{ThemePokemon, []string{"pokemon"}},
	{ThemeIMessage, []string{"msg", "chat"}},
	{ThemeRust, []string{"rust"}},
	{ThemePython, []string{"python"}},
	{ThemeIOS, []string{"ios", "app"}},
	{ThemeAI, []string{"ai", "bot", "gpt", "intelligence", "model"}},
	{ThemeFinance, []string{"bank", "money", "finance", "gold", "cash", "price", "card", "calc", "budget"}},
	{ThemeRealEstate, []string{"real", "estate", "house", "mortgage", "rent", "landlord", "zillow"}},
	{ThemeAudio, []string{"audio", "voice", "sound", "speech", "say", "dtmf", "mouth"}},
	{ThemeCamera, []string{"camera", "photo", "image", "video", "face", "glitch"}},
	{ThemeWeb, []string{"web", "chrome", "browser", "link", "site", "scrape"}},
}

// SelectTheme picks the theme for a seed text by substring match against the
// trigger table. Matching is case-insensitive and by containment, not whole
// words, so "Rusty App" resolves to rust before the "app" keyword is
// reached. Falls back to the default theme when nothing matches.
func SelectTheme(seedText string) Theme {
	lower := strings.ToLower(seedText)
	for _, t := range themeTriggers {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.theme
			}
		}
	}
	return ThemeDefault
}

// AllThemes returns every theme name in priority order, the default last.
func AllThemes() []Theme {
	themes := make([]Theme, 0, len(themeTriggers)+1)
	for _, t := range themeTriggers {
		themes = append(themes, t.theme)
	}
	return append(themes, ThemeDefault)
}

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	for _, t := range AllThemes() {
		if t == Theme(name) {
			return true
		}
	}
	return false
}
