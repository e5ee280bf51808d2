package icon

import "testing"

func TestSelectTheme_Keywords(t *testing.T) {
	tests := []struct {
		seedText string
		want     Theme
	}{
		{"MyTikTok Clone", ThemeTikTok},
		{"file city viewer", ThemeFileCity},
		{"Pokemon Index", ThemePokemon},
		{"group chat", ThemeIMessage},
		{"msg center", ThemeIMessage},
		{"Rusty App", ThemeRust}, // rust outranks the ios "app" keyword
		{"python runner", ThemePython},
		{"my first iOS project", ThemeIOS},
		{"weather app", ThemeIOS},
		{"chess bot", ThemeAI},
		{"gpt frontend", ThemeAI},
		{"budget calculator", ThemeFinance},
		{"gold tracker", ThemeFinance},
		{"mortgage helper", ThemeRealEstate},
		{"voice recorder", ThemeAudio},
		{"photo booth", ThemeCamera},
		{"site monitor", ThemeWeb},
		{"zzz_unmatched_seed_123", ThemeDefault},
		{"", ThemeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.seedText, func(t *testing.T) {
			if got := SelectTheme(tt.seedText); got != tt.want {
				t.Errorf("SelectTheme(%q) = %s, want %s", tt.seedText, got, tt.want)
			}
		})
	}
}

func TestSelectTheme_CaseInsensitive(t *testing.T) {
	if got := SelectTheme("POKEMON TRAINER"); got != ThemePokemon {
		t.Errorf("SelectTheme uppercase = %s, want %s", got, ThemePokemon)
	}
	if got := SelectTheme("TikTok"); got != ThemeTikTok {
		t.Errorf("SelectTheme mixed case = %s, want %s", got, ThemeTikTok)
	}
}

func TestSelectTheme_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		seedText string
		want     Theme
	}{
		{"tiktok beats ios", "tiktok app", ThemeTikTok},
		{"rust beats ios", "rust app", ThemeRust},
		{"imessage beats ios", "chat app", ThemeIMessage},
		{"ios beats ai", "app bot", ThemeIOS},
		{"finance beats web", "bank site", ThemeFinance},
		// "real" matches real-estate before the web "browser" keyword
		{"real-estate beats web", "real estate browser", ThemeRealEstate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectTheme(tt.seedText); got != tt.want {
				t.Errorf("SelectTheme(%q) = %s, want %s", tt.seedText, got, tt.want)
			}
		})
	}
}

func TestSelectTheme_SubstringContainment(t *testing.T) {
	// Matching is containment, not whole words.
	if got := SelectTheme("crusty bread recipes"); got != ThemeRust {
		t.Errorf("SelectTheme(\"crusty bread recipes\") = %s, want %s (contains 'rust')", got, ThemeRust)
	}
	if got := SelectTheme("grapple hook"); got != ThemeIOS {
		t.Errorf("SelectTheme(\"grapple hook\") = %s, want %s (contains 'app')", got, ThemeIOS)
	}
}

func TestAllThemes(t *testing.T) {
	themes := AllThemes()
	if len(themes) != 14 {
		t.Fatalf("Expected 14 themes, got %d", len(themes))
	}
	if themes[0] != ThemeTikTok {
		t.Errorf("First theme should be tiktok, got %s", themes[0])
	}
	if themes[len(themes)-1] != ThemeDefault {
		t.Errorf("Last theme should be default, got %s", themes[len(themes)-1])
	}

	seen := make(map[Theme]bool)
	for _, theme := range themes {
		if seen[theme] {
			t.Errorf("Duplicate theme %s", theme)
		}
		seen[theme] = true
	}
}

func TestIsValidTheme(t *testing.T) {
	for _, theme := range AllThemes() {
		if !IsValidTheme(string(theme)) {
			t.Errorf("IsValidTheme(%q) = false, want true", theme)
		}
	}

	for _, name := range []string{"", "neon", "POKEMON", "auto"} {
		if IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = true, want false", name)
		}
	}
}
