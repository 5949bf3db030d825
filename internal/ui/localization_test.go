package ui

import (
	"fmt"
	"testing"
)

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected unknown language to be ignored, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing translations for %s", lang)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestPasteMessages(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("zh")

	messages := l.PasteMessages()
	if messages.Uploading != "开始上传图片..." {
		t.Errorf("Unexpected uploading text: %s", messages.Uploading)
	}
	if messages.Uploaded != "图片上传成功！" {
		t.Errorf("Unexpected uploaded text: %s", messages.Uploaded)
	}
	if got := fmt.Sprintf(messages.Failed, "file too large"); got != "上传失败: file too large" {
		t.Errorf("Unexpected failure text: %s", got)
	}
}
