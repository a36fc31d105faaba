package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyExpandAll       = "expand_all"
	KeyCollapseAll     = "collapse_all"
	KeyListHeader      = "list_header"
	KeyUnknownName     = "unknown_name"
	KeyRefresh         = "refresh"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyDataSource      = "data_source"
	KeyEndpointURL     = "endpoint_url"
	KeyEndpointFromEnv = "endpoint_from_env"
	KeyInterface       = "interface"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyInvalidURL      = "invalid_url"
	KeyLoading         = "loading"
	KeySelectLanguage  = "select_language"
	KeySystemLanguage  = "system_language"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// it is one of the available languages.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = strings.SplitN(string(lang.SystemLocale()), "-", 2)[0]
		if _, exists := l.texts[code]; !exists {
			code = "en"
		}
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Item List",
		KeyExpandAll:       "Expand All",
		KeyCollapseAll:     "Collapse All",
		KeyListHeader:      "List ID: %d",
		KeyUnknownName:     "Unknown",
		KeyRefresh:         "Refresh",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyDataSource:      "Data Source",
		KeyEndpointURL:     "Endpoint URL",
		KeyEndpointFromEnv: "Set by ITEMLIST_ENDPOINT_URL",
		KeyInterface:       "Interface",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyInvalidURL:      "Invalid URL",
		KeyLoading:         "Loading...",
		KeySelectLanguage:  "Select language",
		KeySystemLanguage:  "System Default",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Список элементов",
		KeyExpandAll:       "Развернуть все",
		KeyCollapseAll:     "Свернуть все",
		KeyListHeader:      "Список №%d",
		KeyUnknownName:     "Неизвестно",
		KeyRefresh:         "Обновить",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyDataSource:      "Источник данных",
		KeyEndpointURL:     "URL источника",
		KeyEndpointFromEnv: "Задано через ITEMLIST_ENDPOINT_URL",
		KeyInterface:       "Интерфейс",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyInvalidURL:      "Неверный URL",
		KeyLoading:         "Загрузка...",
		KeySelectLanguage:  "Выберите язык",
		KeySystemLanguage:  "Системный",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Lista de Itens",
		KeyExpandAll:       "Expandir Tudo",
		KeyCollapseAll:     "Recolher Tudo",
		KeyListHeader:      "Lista ID: %d",
		KeyUnknownName:     "Desconhecido",
		KeyRefresh:         "Atualizar",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyDataSource:      "Fonte de Dados",
		KeyEndpointURL:     "URL do Endpoint",
		KeyEndpointFromEnv: "Definido por ITEMLIST_ENDPOINT_URL",
		KeyInterface:       "Interface",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyInvalidURL:      "URL inválida",
		KeyLoading:         "Carregando...",
		KeySelectLanguage:  "Selecione o idioma",
		KeySystemLanguage:  "Padrão do Sistema",
	}
}
