package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (glyphs)
const (
	IconExpanded  = "▼"
	IconCollapsed = "▶"
	IconSettings  = "⚙"
	IconRefresh   = "⟳"
)

// Layout sizing (group list rows)
const (
	HeaderTextSize float32 = 18
	ItemTextSize   float32 = 16
	TitleTextSize  float32 = 28

	HeaderPadding     float32 = 16
	ItemPadding       float32 = 8
	HeaderRowSpacing  float32 = 8
	ItemRowSpacing    float32 = 4
	ItemIndent        float32 = 24
	HeaderStrokeWidth float32 = 2
	RowCornerRadius   float32 = 12

	LogoSize float32 = 34

	RowMinWidth float32 = 300
)

// Window sizing
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 800

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 300
)

// Pull-to-refresh behavior
const (
	RefreshCooldown = 2 * time.Second
)
