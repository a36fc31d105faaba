package config

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyEndpointURL = "endpoint_url"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultEndpointURL = "https://fetch-hiring.s3.amazonaws.com/hiring.json"
	DefaultLanguage    = "system"
)

// Settings manages application configuration. Environment overrides, when
// set, take precedence over stored preferences.
type Settings struct {
	app       fyne.App
	overrides Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, overrides Env) *Settings {
	return &Settings{app: app, overrides: overrides}
}

// GetEndpointURL returns the URL the records are fetched from
func (s *Settings) GetEndpointURL() string {
	if s.overrides.EndpointURL != "" {
		return s.overrides.EndpointURL
	}
	endpoint := s.app.Preferences().String(KeyEndpointURL)
	if endpoint == "" {
		return DefaultEndpointURL
	}
	return endpoint
}

// SetEndpointURL stores the endpoint URL. An empty value resets to the default.
func (s *Settings) SetEndpointURL(endpoint string) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpointURL
	}
	s.app.Preferences().SetString(KeyEndpointURL, endpoint)
}

// IsEndpointOverridden reports whether the endpoint comes from the environment
func (s *Settings) IsEndpointOverridden() bool {
	return s.overrides.EndpointURL != ""
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ValidateEndpointURL checks that the value is an absolute http(s) URL
func ValidateEndpointURL(input string) error {
	parsed, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidScheme
	}
	if parsed.Host == "" {
		return ErrMissingHost
	}
	return nil
}
