package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconUpload   = "⬆"
	IconCopy     = "📋"
	IconLink     = "🔗"
	IconClose    = "×"
	IconError    = "❌"
	IconPending  = "⏳"
	IconDone     = "✔"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	StatusLabelWidth float32 = 96
	RowMinWidth      float32 = 360
	RowMinHeight     float32 = 56

	LogoSize        float32 = 28
	EditorSplitRate         = 0.7

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 300
)

// Notification panel behavior
const (
	NotificationAutoHide = 4 * time.Second
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
