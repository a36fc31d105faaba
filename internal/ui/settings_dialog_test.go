package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/item-list/internal/config"
)

func newTestSettingsDialog(t *testing.T, env config.Env) (*SettingsDialog, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app, env)
	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_LoadsCurrentValues(t *testing.T) {
	sd, _ := newTestSettingsDialog(t, config.Env{})

	assert.Equal(t, config.DefaultEndpointURL, sd.endpointEntry.Text)
	assert.Equal(t, "System Default", sd.languageSelect.Selected)
	assert.False(t, sd.endpointEntry.Disabled())
}

func TestSettingsDialog_ApplyStoresValues(t *testing.T) {
	sd, settings := newTestSettingsDialog(t, config.Env{})

	sd.endpointEntry.SetText("https://example.com/items.json")
	sd.languageSelect.SetSelected("Português")

	require.NoError(t, sd.apply())
	assert.Equal(t, "https://example.com/items.json", settings.GetEndpointURL())
	assert.Equal(t, "pt", settings.GetLanguage())
}

func TestSettingsDialog_ApplyRejectsInvalidEndpoint(t *testing.T) {
	sd, settings := newTestSettingsDialog(t, config.Env{})

	sd.endpointEntry.SetText("ftp://example.com/items.json")
	sd.languageSelect.SetSelected("English")

	err := sd.apply()
	require.ErrorIs(t, err, config.ErrInvalidScheme)
	assert.Equal(t, config.DefaultEndpointURL, settings.GetEndpointURL())
	assert.Equal(t, config.DefaultLanguage, settings.GetLanguage())
}

func TestSettingsDialog_EmptyEndpointResets(t *testing.T) {
	sd, settings := newTestSettingsDialog(t, config.Env{})
	settings.SetEndpointURL("https://example.com/items.json")

	sd.endpointEntry.SetText("")
	require.NoError(t, sd.apply())

	assert.Equal(t, config.DefaultEndpointURL, settings.GetEndpointURL())
}

func TestSettingsDialog_EnvOverrideDisablesEndpoint(t *testing.T) {
	override := "http://localhost:8080/hiring.json"
	sd, settings := newTestSettingsDialog(t, config.Env{EndpointURL: override})

	assert.True(t, sd.endpointEntry.Disabled())
	assert.Equal(t, override, sd.endpointEntry.Text)

	sd.endpointEntry.SetText("not a url")
	require.NoError(t, sd.apply())
	assert.Equal(t, override, settings.GetEndpointURL())
}
