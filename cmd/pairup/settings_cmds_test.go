package main

import (
	"context"
	"testing"

	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsClient struct {
	theme    settings.Theme
	language string
	darkSets []bool
}

func (f *fakeSettingsClient) Theme(ctx context.Context) (settings.Theme, error) {
	return f.theme, nil
}

func (f *fakeSettingsClient) SetDarkMode(ctx context.Context, on bool) error {
	f.darkSets = append(f.darkSets, on)
	if on {
		f.theme = settings.ThemeDark
	} else {
		f.theme = settings.ThemeLight
	}
	return nil
}

func (f *fakeSettingsClient) Language(ctx context.Context) (string, error) {
	return f.language, nil
}

func (f *fakeSettingsClient) SetLanguage(ctx context.Context, code string) error {
	if err := settings.ValidateLanguage(code); err != nil {
		return err
	}
	f.language = code
	return nil
}

func TestDarkModeShowsSystemByDefault(t *testing.T) {
	out, err := execute(t, NewDarkModeCmd(&fakeSettingsClient{}))
	require.NoError(t, err)
	assert.Equal(t, "system\n", out)
}

func TestDarkModeOnOff(t *testing.T) {
	client := &fakeSettingsClient{}

	out, err := execute(t, NewDarkModeCmd(client), "on")
	require.NoError(t, err)
	assert.Contains(t, out, "Dark mode enabled")

	out, err = execute(t, NewDarkModeCmd(client), "OFF")
	require.NoError(t, err)
	assert.Contains(t, out, "Dark mode disabled")
	assert.Equal(t, []bool{true, false}, client.darkSets)
}

func TestDarkModeRejectsGarbage(t *testing.T) {
	client := &fakeSettingsClient{}
	_, err := execute(t, NewDarkModeCmd(client), "maybe")
	require.Error(t, err)
	assert.Empty(t, client.darkSets)
}

func TestLanguageShowAndSet(t *testing.T) {
	client := &fakeSettingsClient{language: "ko"}

	out, err := execute(t, NewLanguageCmd(client))
	require.NoError(t, err)
	assert.Equal(t, "한국어 (ko)\n", out)

	out, err = execute(t, NewLanguageCmd(client), "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Language set to English")
	assert.Equal(t, "en", client.language)
}

func TestLanguageRejectsUnsupported(t *testing.T) {
	client := &fakeSettingsClient{language: "ko"}
	_, err := execute(t, NewLanguageCmd(client), "xx")
	require.ErrorIs(t, err, settings.ErrUnsupportedLanguage)
	assert.Equal(t, "ko", client.language)
}

func TestLanguageList(t *testing.T) {
	out, err := execute(t, NewLanguageCmd(&fakeSettingsClient{}), "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "en\tEnglish")
	assert.Contains(t, out, "ko\t한국어")
}

func TestSettingsCommandsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { NewDarkModeCmd(nil) })
	assert.Panics(t, func() { NewLanguageCmd(nil) })
}
