package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette
var (
	DarkPurple      = color.NRGBA{R: 0x30, G: 0x0D, B: 0x38, A: 0xFF}
	LightBackground = color.NRGBA{R: 0xF9, G: 0xF8, B: 0xF9, A: 0xFF}
	AccentColor     = color.NRGBA{R: 0xFF, G: 0xA9, B: 0x00, A: 0xFF}
)

// ItemListTheme paints the app in the dark purple / amber palette regardless of variant
type ItemListTheme struct{}

// NewItemListTheme creates the app theme
func NewItemListTheme() fyne.Theme {
	return &ItemListTheme{}
}

// Color returns theme colors
func (t *ItemListTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return DarkPurple
	case theme.ColorNameForeground:
		return LightBackground
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return AccentColor
	case theme.ColorNameForegroundOnPrimary:
		return DarkPurple
	case theme.ColorNameSeparator:
		return AccentColor
	case theme.ColorNameHover:
		return color.NRGBA{R: 0xFF, G: 0xA9, B: 0x00, A: 0x33}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xFF, G: 0xA9, B: 0x00, A: 0x55}
	}

	// Use dark defaults for everything else so contrast matches the background
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *ItemListTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ItemListTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ItemListTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return ItemTextSize
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameInputRadius:
		return RowCornerRadius
	case theme.SizeNameSelectionRadius:
		return RowCornerRadius
	}

	return theme.DefaultTheme().Size(name)
}
