package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lsky-paste/internal/config"
)

// languageOrder fixes the order of the language select
var languageOrder = []string{"system", "en", "zh", "ru", "pt"}

// TokenSettings reads and persists the API token
type TokenSettings interface {
	Settings() config.Settings
	SetToken(token string) error
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	tokens       TokenSettings
	prefs        *config.Preferences
	localization *Localization
	window       fyne.Window
	dialog       dialog.Dialog

	onLanguageChange    func(lang string)
	onMaxParallelChange func(limit int)

	// UI components
	tokenEntry     *widget.Entry
	languageSelect *widget.Select
	parallelSelect *widget.Select
	languageCodes  map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(tokens TokenSettings, prefs *config.Preferences, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		tokens:        tokens,
		prefs:         prefs,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// SetCallbacks sets the callbacks fired when preferences change
func (sd *SettingsDialog) SetCallbacks(onLanguageChange func(lang string), onMaxParallelChange func(limit int)) {
	sd.onLanguageChange = onLanguageChange
	sd.onMaxParallelChange = onMaxParallelChange
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI. Every field applies on change.
func (sd *SettingsDialog) createUI() {
	sd.tokenEntry = widget.NewPasswordEntry()
	sd.tokenEntry.SetPlaceHolder(sd.localization.GetText(KeyTokenPlaceholder))

	hint := widget.NewLabel(sd.localization.GetText(KeyTokenHint))
	hint.Importance = widget.LowImportance

	labels := sd.prefs.GetLanguageOptions()
	options := make([]string, 0, len(languageOrder))
	for _, code := range languageOrder {
		name, ok := labels[code]
		if !ok {
			continue
		}
		sd.languageCodes[name] = code
		options = append(options, name)
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	parallelOptions := make([]string, 0, config.MaxMaxParallel)
	for i := config.MinMaxParallel; i <= config.MaxMaxParallel; i++ {
		parallelOptions = append(parallelOptions, strconv.Itoa(i))
	}
	sd.parallelSelect = widget.NewSelect(parallelOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyToken)+":"),
		sd.tokenEntry,
		hint,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyMaxParallel)+":"),
		sd.parallelSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustom(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeyClose),
		form,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI, then attaches the change handlers
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.tokenEntry.OnChanged = nil
	sd.languageSelect.OnChanged = nil
	sd.parallelSelect.OnChanged = nil

	sd.tokenEntry.SetText(sd.tokens.Settings().Token)
	sd.parallelSelect.SetSelected(strconv.Itoa(sd.prefs.GetMaxParallelUploads()))
	current := sd.prefs.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}

	sd.tokenEntry.OnChanged = sd.onTokenChanged
	sd.languageSelect.OnChanged = sd.onLanguageSelected
	sd.parallelSelect.OnChanged = sd.onParallelSelected
}

// onTokenChanged persists the token immediately
func (sd *SettingsDialog) onTokenChanged(token string) {
	if err := sd.tokens.SetToken(token); err != nil {
		log.Printf("Failed to save token: %v", err)
	}
}

func (sd *SettingsDialog) onLanguageSelected(name string) {
	code, ok := sd.languageCodes[name]
	if !ok {
		return
	}
	sd.prefs.SetLanguage(code)
	if sd.onLanguageChange != nil {
		sd.onLanguageChange(code)
	}
}

func (sd *SettingsDialog) onParallelSelected(value string) {
	limit, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	sd.prefs.SetMaxParallelUploads(limit)
	if sd.onMaxParallelChange != nil {
		sd.onMaxParallelChange(sd.prefs.GetMaxParallelUploads())
	}
}
