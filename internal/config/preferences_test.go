package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	prefs := NewPreferences(app)

	if lang := prefs.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	prefs.SetLanguage("zh")
	if lang := prefs.GetLanguage(); lang != "zh" {
		t.Errorf("Expected language zh, got %s", lang)
	}
}

func TestLanguageOptions(t *testing.T) {
	prefs := NewPreferences(test.NewApp())
	options := prefs.GetLanguageOptions()

	for _, code := range []string{"system", "en", "zh", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s", code)
		}
	}
}

func TestMaxParallelUploads(t *testing.T) {
	prefs := NewPreferences(test.NewApp())

	if got := prefs.GetMaxParallelUploads(); got != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, got)
	}

	prefs.SetMaxParallelUploads(5)
	if got := prefs.GetMaxParallelUploads(); got != 5 {
		t.Errorf("Expected max parallel 5, got %d", got)
	}

	prefs.SetMaxParallelUploads(0)
	if prefs.GetMaxParallelUploads() != MinMaxParallel {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	prefs.SetMaxParallelUploads(15)
	if prefs.GetMaxParallelUploads() != MaxMaxParallel {
		t.Error("Max parallel should be clamped to maximum 10")
	}
}

func TestLastDirectory(t *testing.T) {
	prefs := NewPreferences(test.NewApp())

	prefs.SetLastDirectory("/tmp/shots")
	if dir := prefs.GetLastDirectory(); dir != "/tmp/shots" {
		t.Errorf("Expected /tmp/shots, got %s", dir)
	}
}
