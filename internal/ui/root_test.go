package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/plugin"
	"github.com/ytget/lsky-paste/internal/upload"
)

func newTestRoot(t *testing.T, uploader upload.Uploader) (*RootUI, *upload.Service) {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")
	t.Cleanup(window.Close)

	service := upload.NewService(uploader)
	ui := NewRootUI(window, app, service, config.NewPreferences(app))
	ui.AttachPlugin(plugin.New(service, plugin.WithFileSource(ui)))
	return ui, service
}

func TestRootUI_RegistersUploadCommand(t *testing.T) {
	ui, _ := newTestRoot(t, upload.UploaderFunc(func(ctx context.Context, image []byte, token string) (string, error) {
		return "", nil
	}))

	if len(ui.commands) != 1 || ui.commands[0].ID != plugin.CommandUploadImage {
		t.Fatalf("Expected upload-image command, got %+v", ui.commands)
	}
	if ui.ActiveEditor() != ui.editor {
		t.Error("Expected the Markdown editor to be the active editor")
	}
	if ui.settingsDialog == nil {
		t.Error("Expected settings dialog to be created")
	}
}

func TestRootUI_PluginDataUsesPreferences(t *testing.T) {
	ui, _ := newTestRoot(t, upload.UploaderFunc(func(ctx context.Context, image []byte, token string) (string, error) {
		return "", nil
	}))

	if err := ui.plugin.SetToken("abc123"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := ui.app.Preferences().String(config.KeyPluginData); got != `{"token":"abc123"}` {
		t.Errorf("Unexpected stored plugin data: %s", got)
	}
}

func TestRootUI_PasteImageInsertsLink(t *testing.T) {
	var gotToken string
	ui, service := newTestRoot(t, upload.UploaderFunc(func(ctx context.Context, image []byte, token string) (string, error) {
		gotToken = token
		return "![](https://x/y.png)", nil
	}))
	if err := ui.plugin.SetToken("abc123"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	path := writeTestPNG(t)
	ui.editor.TypedShortcut(&fyne.ShortcutPaste{Clipboard: textClipboard(path)})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(service.GetAllTasks()) == 0 {
		time.Sleep(10 * time.Millisecond)
	}
	for time.Now().Before(deadline) && ui.editor.Text == "" {
		time.Sleep(10 * time.Millisecond)
	}

	if ui.editor.Text != "![](https://x/y.png)" {
		t.Errorf("Expected link to be inserted, got '%s'", ui.editor.Text)
	}
	if gotToken != "abc123" {
		t.Errorf("Expected token abc123, got '%s'", gotToken)
	}

	tasks := service.GetAllTasks()
	if len(tasks) != 1 || tasks[0].Name != "shot.png" {
		t.Errorf("Expected one recorded upload named shot.png, got %+v", tasks)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRoot(t, upload.UploaderFunc(func(ctx context.Context, image []byte, token string) (string, error) {
		return "", nil
	}))

	ui.onLanguageChange("zh")

	if ui.uploadBtn.Text != IconUpload+" 上传图片到Lsky图床" {
		t.Errorf("Expected localized upload button, got '%s'", ui.uploadBtn.Text)
	}
	if ui.window.Title() != "Lsky 图床" {
		t.Errorf("Expected localized title, got '%s'", ui.window.Title())
	}
}

func TestRootUI_ClearFinished(t *testing.T) {
	ui, service := newTestRoot(t, upload.UploaderFunc(func(ctx context.Context, image []byte, token string) (string, error) {
		return "![](https://x/y.png)", nil
	}))

	if _, err := service.Upload(context.Background(), []byte("img"), ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ui.onClearFinished()

	if len(service.GetAllTasks()) != 0 {
		t.Error("Expected finished uploads to be cleared")
	}
}
