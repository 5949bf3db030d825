package ui

import (
	"github.com/ytget/lsky-paste/internal/paste"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyUploadImage       = "upload_image"
	KeyToken             = "token"
	KeyTokenHint         = "token_hint"
	KeyTokenPlaceholder  = "token_placeholder"
	KeyMaxParallel       = "max_parallel"
	KeyClose             = "close"
	KeyEditorPlaceholder = "editor_placeholder"
	KeyUploads           = "uploads"
	KeyClearFinished     = "clear_finished"
	KeyCopyMarkdown      = "copy_markdown"
	KeyCopyURL           = "copy_url"
	KeyCopied            = "copied"
	KeyRemove            = "remove"
	KeyUploading         = "uploading"
	KeyUploaded          = "uploaded"
	KeyUploadFailed      = "upload_failed"
	KeyNotAnImage        = "not_an_image"
	KeyNoLink            = "no_link"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
		"ru": "Русский",
		"pt": "Português",
	}
}

// PasteMessages returns the upload notification texts in the current language
func (l *Localization) PasteMessages() paste.Messages {
	return paste.Messages{
		Uploading: l.GetText(KeyUploading),
		Uploaded:  l.GetText(KeyUploaded),
		Failed:    l.GetText(KeyUploadFailed),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Lsky Paste",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyUploadImage:       "Upload image",
		KeyToken:             "API Token",
		KeyTokenHint:         "Lsky Pro API token (optional)",
		KeyTokenPlaceholder:  "Enter your API token",
		KeyMaxParallel:       "Parallel uploads",
		KeyClose:             "Close",
		KeyEditorPlaceholder: "Write Markdown here. Paste or drop images to upload them.",
		KeyUploads:           "Uploads",
		KeyClearFinished:     "Clear finished",
		KeyCopyMarkdown:      "Markdown",
		KeyCopyURL:           "URL",
		KeyCopied:            "Copied to clipboard",
		KeyRemove:            "Remove",
		KeyUploading:         "Uploading image...",
		KeyUploaded:          "Image uploaded",
		KeyUploadFailed:      "Upload failed: %s",
		KeyNotAnImage:        "Not an image",
		KeyNoLink:            "No link available",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:          "Lsky 图床",
		KeyFile:              "文件",
		KeySettings:          "设置",
		KeyLanguage:          "语言",
		KeyUploadImage:       "上传图片到Lsky图床",
		KeyToken:             "API Token",
		KeyTokenHint:         "设置Lsky Pro的API Token (可选)",
		KeyTokenPlaceholder:  "输入你的API Token",
		KeyMaxParallel:       "并行上传数",
		KeyClose:             "关闭",
		KeyEditorPlaceholder: "在此编写 Markdown，粘贴或拖入图片即可上传。",
		KeyUploads:           "上传记录",
		KeyClearFinished:     "清除已完成",
		KeyCopyMarkdown:      "Markdown",
		KeyCopyURL:           "链接",
		KeyCopied:            "已复制到剪贴板",
		KeyRemove:            "移除",
		KeyUploading:         "开始上传图片...",
		KeyUploaded:          "图片上传成功！",
		KeyUploadFailed:      "上传失败: %s",
		KeyNotAnImage:        "不是图片",
		KeyNoLink:            "没有可用的链接",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Lsky Paste",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyUploadImage:       "Загрузить изображение",
		KeyToken:             "API токен",
		KeyTokenHint:         "API токен Lsky Pro (необязательно)",
		KeyTokenPlaceholder:  "Введите API токен",
		KeyMaxParallel:       "Параллельных загрузок",
		KeyClose:             "Закрыть",
		KeyEditorPlaceholder: "Пишите Markdown здесь. Вставьте или перетащите изображение для загрузки.",
		KeyUploads:           "Загрузки",
		KeyClearFinished:     "Очистить завершённые",
		KeyCopyMarkdown:      "Markdown",
		KeyCopyURL:           "Ссылка",
		KeyCopied:            "Скопировано в буфер обмена",
		KeyRemove:            "Удалить",
		KeyUploading:         "Загрузка изображения...",
		KeyUploaded:          "Изображение загружено",
		KeyUploadFailed:      "Ошибка загрузки: %s",
		KeyNotAnImage:        "Не изображение",
		KeyNoLink:            "Ссылка недоступна",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Lsky Paste",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyUploadImage:       "Enviar imagem",
		KeyToken:             "Token da API",
		KeyTokenHint:         "Token da API do Lsky Pro (opcional)",
		KeyTokenPlaceholder:  "Digite seu token da API",
		KeyMaxParallel:       "Envios paralelos",
		KeyClose:             "Fechar",
		KeyEditorPlaceholder: "Escreva Markdown aqui. Cole ou arraste imagens para enviá-las.",
		KeyUploads:           "Envios",
		KeyClearFinished:     "Limpar concluídos",
		KeyCopyMarkdown:      "Markdown",
		KeyCopyURL:           "URL",
		KeyCopied:            "Copiado para a área de transferência",
		KeyRemove:            "Remover",
		KeyUploading:         "Enviando imagem...",
		KeyUploaded:          "Imagem enviada",
		KeyUploadFailed:      "Falha no envio: %s",
		KeyNotAnImage:        "Não é uma imagem",
		KeyNoLink:            "Nenhum link disponível",
	}
}
