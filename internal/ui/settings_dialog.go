package ui

import (
	"fmt"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/item-list/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	endpointEntry  *widget.Entry
	languageSelect *widget.Select

	// Language label to code, for the select options
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultEndpointURL)
	sd.endpointEntry.Validator = config.ValidateEndpointURL

	endpointHint := widget.NewLabel("")
	if sd.settings.IsEndpointOverridden() {
		sd.endpointEntry.Disable()
		endpointHint.SetText(loc.GetText(KeyEndpointFromEnv))
	} else {
		endpointHint.Hide()
	}

	// Language selection, shown by label
	languageLabels := sd.settings.GetLanguageOptions()
	languageLabels[config.DefaultLanguage] = loc.GetText(KeySystemLanguage)
	sd.languageCodes = make(map[string]string, len(languageLabels))
	options := make([]string, 0, len(languageLabels))
	for _, code := range slices.Sorted(maps.Keys(languageLabels)) {
		label := languageLabels[code]
		sd.languageCodes[label] = code
		options = append(options, label)
	}
	sd.languageSelect = widget.NewSelect(options, nil)
	sd.languageSelect.PlaceHolder = loc.GetText(KeySelectLanguage)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyDataSource)),
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyEndpointURL)+":"),
		sd.endpointEntry,
		endpointHint,

		widget.NewSeparator(),
		widget.NewLabel(loc.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetEndpointURL())

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the entered values. Nothing is stored if the endpoint is invalid.
func (sd *SettingsDialog) apply() error {
	if !sd.settings.IsEndpointOverridden() {
		endpoint := sd.endpointEntry.Text
		if endpoint != "" {
			if err := config.ValidateEndpointURL(endpoint); err != nil {
				return fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidURL), err)
			}
		}
		sd.settings.SetEndpointURL(endpoint)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	return nil
}
