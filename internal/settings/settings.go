// Package settings persists app preferences and the theme override.
package settings

import (
	"errors"
	"fmt"
	"sort"
)

// Persisted keys.
const (
	KeyAppSettings = "app_settings"
	KeyLanguage    = "app_language"
)

// Theme is the user's appearance override. ThemeSystem defers to the
// terminal or OS appearance.
type Theme string

const (
	ThemeSystem Theme = ""
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// String returns the theme name, or "system" for ThemeSystem.
func (t Theme) String() string {
	if t == ThemeSystem {
		return "system"
	}
	return string(t)
}

// AppSettings holds user preferences.
//
// JSON Schema:
//
//	{
//	  "darkModeEnabled": false,
//	  "notificationsEnabled": true,
//	  "soundEnabled": true,
//	  "vibrationEnabled": true,
//	  "showOnlineStatus": true,
//	  "matchNotifications": true
//	}
type AppSettings struct {
	DarkModeEnabled      bool `json:"darkModeEnabled"`
	NotificationsEnabled bool `json:"notificationsEnabled"`
	SoundEnabled         bool `json:"soundEnabled"`
	VibrationEnabled     bool `json:"vibrationEnabled"`
	ShowOnlineStatus     bool `json:"showOnlineStatus"`
	MatchNotifications   bool `json:"matchNotifications"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() AppSettings {
	return AppSettings{
		NotificationsEnabled: true,
		SoundEnabled:         true,
		VibrationEnabled:     true,
		ShowOnlineStatus:     true,
		MatchNotifications:   true,
	}
}

// Theme returns the override the settings imply.
func (s AppSettings) Theme() Theme {
	if s.DarkModeEnabled {
		return ThemeDark
	}
	return ThemeLight
}

// DefaultLanguage is used when no language was chosen.
const DefaultLanguage = "ko"

// ErrUnsupportedLanguage is returned by SetLanguage for an unknown code.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var languages = map[string]string{
	"ko": "한국어",
	"en": "English",
	"ja": "日本語",
}

// Languages returns the supported language codes, sorted.
func Languages() []string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageName returns the display name for code.
func LanguageName(code string) string {
	if name, ok := languages[code]; ok {
		return name
	}
	return code
}

// ValidateLanguage checks that code is supported.
func ValidateLanguage(code string) error {
	if _, ok := languages[code]; !ok {
		return fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedLanguage, code, Languages())
	}
	return nil
}
