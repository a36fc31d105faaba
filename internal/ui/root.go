package ui

import (
	"context"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/item-list/internal/config"
	"github.com/ytget/item-list/internal/state"
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	store        *state.Store
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	// UI components
	titleText      *canvas.Text
	expandAllBtn   *widget.Button
	collapseAllBtn *widget.Button
	refreshBtn     *widget.Button
	loading        *widget.ProgressBarInfinite
	loadingLabel   *widget.Label
	loadingPanel   *fyne.Container
	groupList      *GroupList
}

// NewRootUI creates the main UI and subscribes it to store changes.
// Call Start to trigger the initial load.
func NewRootUI(window fyne.Window, store *state.Store, settings *config.Settings, localization *Localization, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	ui := &RootUI{
		ctx:          context.Background(),
		window:       window,
		store:        store,
		settings:     settings,
		localization: localization,
		logger:       logger.Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	store.Subscribe(ui.render)
	ui.render()
	return ui
}

// Start fetches the records from the configured endpoint. ctx bounds this
// and every later reload.
func (ui *RootUI) Start(ctx context.Context) {
	ui.ctx = ctx
	ui.Reload()
}

// Reload fetches the records again. It is a no-op while a load is running.
func (ui *RootUI) Reload() {
	endpoint := ui.settings.GetEndpointURL()
	if !ui.store.Load(ui.ctx, endpoint) {
		return
	}
	ui.logger.Debug("load started", zap.String("url", endpoint))
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header with logo and title
	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), LightBackground)
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}

	header := container.NewHBox(ui.titleText)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, ui.titleText)
	} else {
		ui.logger.Debug("logo not loaded", zap.Error(err))
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	ui.refreshBtn = widget.NewButton(IconRefresh, ui.Reload)
	ui.refreshBtn.Importance = widget.LowImportance
	if isMobileDevice() {
		// Pull down on the list instead
		ui.refreshBtn.Hide()
	}
	topPanel := container.NewBorder(nil, nil, nil, container.NewHBox(ui.refreshBtn, settingsBtn), header)

	// Global expand/collapse buttons
	ui.expandAllBtn = widget.NewButton(ui.localization.GetText(KeyExpandAll), func() {
		ui.store.Dispatch(state.ExpandAll{})
	})
	ui.collapseAllBtn = widget.NewButton(ui.localization.GetText(KeyCollapseAll), func() {
		ui.store.Dispatch(state.CollapseAll{})
	})
	buttons := newAdaptiveButtonBar(ui.expandAllBtn, ui.collapseAllBtn)

	ui.loading = widget.NewProgressBarInfinite()
	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeyLoading))
	ui.loadingPanel = container.NewBorder(nil, nil, ui.loadingLabel, nil, ui.loading)
	ui.loadingPanel.Hide()

	ui.groupList = NewGroupList(ui.logger)
	ui.groupList.SetCallbacks(
		func(groupID int) { ui.store.Dispatch(state.ToggleGroup{GroupID: groupID}) },
		ui.Reload,
	)

	top := container.NewVBox(container.NewPadded(topPanel), buttons, ui.loadingPanel)
	content := container.NewBorder(
		top,                      // top
		nil,                      // bottom
		nil,                      // left
		nil,                      // right
		ui.groupList.Container(), // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.Reload)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(availableLanguages)) {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// render redraws everything derived from the store
func (ui *RootUI) render() {
	if ui.store.Status().IsActive() {
		ui.loadingPanel.Show()
		ui.loading.Start()
	} else {
		ui.loading.Stop()
		ui.loadingPanel.Hide()
	}

	ui.expandAllBtn.Importance = emphasis(ui.store.AllExpanded())
	ui.expandAllBtn.Refresh()
	ui.collapseAllBtn.Importance = emphasis(ui.store.AllCollapsed())
	ui.collapseAllBtn.Refresh()

	ui.groupList.SetRows(BuildRows(ui.store.View(), ui.store.IsExpanded, ui.localization))
}

// emphasis mutes a button whose action would change nothing
func emphasis(alreadyApplied bool) widget.Importance {
	if alreadyApplied {
		return widget.LowImportance
	}
	return widget.HighImportance
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()
	ui.expandAllBtn.SetText(ui.localization.GetText(KeyExpandAll))
	ui.collapseAllBtn.SetText(ui.localization.GetText(KeyCollapseAll))
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))

	// Header and placeholder texts are localized
	ui.render()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.Reload()
}

// GroupList returns the grouped list component
func (ui *RootUI) GroupList() *GroupList {
	return ui.groupList
}

// IsLoading reports whether the loading indicator is shown
func (ui *RootUI) IsLoading() bool {
	return ui.loadingPanel.Visible()
}
