package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/lsky-paste/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyPluginData  = "plugin_data"
	KeyLanguage    = "app_language"
	KeyMaxParallel = "max_parallel_uploads"
	KeyLastDir     = "last_open_directory"
)

// Default values
const (
	DefaultLanguage    = "system"
	DefaultMaxParallel = 3
	MinMaxParallel     = 1
	MaxMaxParallel     = 10
)

// PreferencesData stores plugin data as a JSON string in Fyne preferences
type PreferencesData struct {
	app fyne.App
}

// NewPreferencesData creates a data store on top of the app preferences
func NewPreferencesData(app fyne.App) *PreferencesData {
	return &PreferencesData{app: app}
}

// LoadData returns the stored JSON, or nil when nothing was saved yet
func (p *PreferencesData) LoadData() ([]byte, error) {
	value := p.app.Preferences().String(KeyPluginData)
	if value == "" {
		return nil, nil
	}
	return []byte(value), nil
}

// SaveData replaces the stored JSON
func (p *PreferencesData) SaveData(data []byte) error {
	p.app.Preferences().SetString(KeyPluginData, string(data))
	return nil
}

// Preferences manages UI preferences of the desktop app
type Preferences struct {
	app fyne.App
}

// NewPreferences creates a new preferences manager
func NewPreferences(app fyne.App) *Preferences {
	return &Preferences{app: app}
}

// GetLanguage returns the configured language
func (p *Preferences) GetLanguage() string {
	lang := p.app.Preferences().String(KeyLanguage)
	if lang == "" {
		p.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (p *Preferences) SetLanguage(lang string) {
	p.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (p *Preferences) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetMaxParallelUploads returns how many images of one paste upload at once
func (p *Preferences) GetMaxParallelUploads() int {
	value := p.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		p.SetMaxParallelUploads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelUploads sets the upload concurrency, clamped to [1, 10]
func (p *Preferences) SetMaxParallelUploads(count int) {
	if count < MinMaxParallel {
		count = MinMaxParallel
	}
	if count > MaxMaxParallel {
		count = MaxMaxParallel
	}
	p.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetLastDirectory returns the folder the file dialog opened last,
// falling back to the user's pictures folder
func (p *Preferences) GetLastDirectory() string {
	dir := p.app.Preferences().String(KeyLastDir)
	if dir != "" {
		return dir
	}
	pictures, err := platform.GetHomePicturesDir()
	if err != nil {
		return ""
	}
	return pictures
}

// SetLastDirectory remembers the folder of the last opened file
func (p *Preferences) SetLastDirectory(dir string) {
	p.app.Preferences().SetString(KeyLastDir, dir)
}
