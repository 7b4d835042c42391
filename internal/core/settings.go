package core

import (
	"context"

	"github.com/cristianoliveira/pairup/internal/bus"
	"github.com/cristianoliveira/pairup/internal/settings"
)

// Settings returns the saved app settings.
func (c *Core) Settings(ctx context.Context) settings.AppSettings {
	return c.settings.Load(ctx)
}

// SaveSettings persists s. Dark mode changes should go through SetDarkMode
// so subscribers are notified.
func (c *Core) SaveSettings(ctx context.Context, s settings.AppSettings) error {
	return c.settings.Save(ctx, s)
}

// Theme returns the persisted theme override.
func (c *Core) Theme(ctx context.Context) settings.Theme {
	return c.settings.ThemeOverride(ctx)
}

// SetDarkMode saves the preference and notifies theme subscribers.
func (c *Core) SetDarkMode(ctx context.Context, on bool) error {
	return c.settings.SetDarkMode(ctx, on)
}

// Language returns the chosen language code.
func (c *Core) Language(ctx context.Context) string {
	return c.settings.Language(ctx)
}

// SetLanguage persists a language code.
func (c *Core) SetLanguage(ctx context.Context, code string) error {
	return c.settings.SetLanguage(ctx, code)
}

// SubscribeTheme registers fn for theme changes and returns its unsubscribe.
func (c *Core) SubscribeTheme(fn func(bus.Event)) func() {
	return c.bus.Subscribe(fn)
}
