package ui

// Package ui contains the Fyne-based desktop host for the uploader plugin.
// It provides a Markdown editor that turns pasted and dropped images into links,
// the plugin command menu, a settings dialog, transient notifications and the
// list of recent uploads. All UI strings are localized via Localization.
