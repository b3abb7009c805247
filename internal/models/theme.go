package models

// DefaultTheme is applied when a profile references an unknown theme.
const DefaultTheme = "zen-minimal"

// Theme is a named set of presentation tokens consumed by renderers. The
// backend treats themes as data; it never interprets the token values.
type Theme struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

var themeRegistry = []Theme{
	{
		Key:        "sacred-earth",
		Name:       "Sacred Earth",
		Primary:    "#8B6F47",
		Secondary:  "#D4A574",
		Background: "#F5F1EB",
		Text:       "#3E2723",
		Accent:     "#C9A961",
	},
	{
		Key:        "zen-minimal",
		Name:       "Zen Minimal",
		Primary:    "#FF7043",
		Secondary:  "#EEEEEE",
		Background: "#FFFFFF",
		Text:       "#424242",
		Accent:     "#FFA88D",
	},
	{
		Key:        "mystic-teal-gold",
		Name:       "Mystic Teal & Gold",
		Primary:    "#E85D2E",
		Secondary:  "#A18267",
		Background: "#FFFFFF",
		Text:       "#424242",
		Accent:     "#A37758",
	},
	{
		Key:        "ocean-temple",
		Name:       "Ocean Temple",
		Primary:    "#0EA5E9",
		Secondary:  "#FF8A6B",
		Background: "linear-gradient(135deg, #E0F2FE 0%, #B3E5FC 100%)",
		Text:       "#424242",
		Accent:     "#FF7043",
	},
}

// Themes returns the available themes in display order.
func Themes() []Theme {
	out := make([]Theme, len(themeRegistry))
	copy(out, themeRegistry)
	return out
}

// ThemeByKey looks up a theme by its key.
func ThemeByKey(key string) (Theme, bool) {
	for _, t := range themeRegistry {
		if t.Key == key {
			return t, true
		}
	}
	return Theme{}, false
}

// ResolveTheme returns the theme for key, falling back to the default when
// the key is empty or unknown. Stale keys can survive in stored profiles
// after a theme is retired, so rendering never fails on them.
func ResolveTheme(key string) Theme {
	if t, ok := ThemeByKey(key); ok {
		return t
	}
	t, _ := ThemeByKey(DefaultTheme)
	return t
}

// ValidTheme reports whether key names a registered theme.
func ValidTheme(key string) bool {
	_, ok := ThemeByKey(key)
	return ok
}
