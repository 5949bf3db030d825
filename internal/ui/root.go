package ui

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/model"
	"github.com/ytget/lsky-paste/internal/paste"
	"github.com/ytget/lsky-paste/internal/plugin"
	"github.com/ytget/lsky-paste/internal/upload"
)

// imageMIMEFilter limits the file dialog to images
var imageMIMEFilter = []string{"image/*"}

// RootUI is the main window and the host the uploader plugin is loaded into
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	tracker      upload.Tracker
	prefs        *config.Preferences
	localization *Localization
	plugin       *plugin.Plugin

	editor         *MarkdownEditor
	uploadBtn      *widget.Button
	settingsBtn    *widget.Button
	clearBtn       *widget.Button
	uploadsTitle   *widget.Label
	uploadList     *widget.List
	settingsDialog *SettingsDialog

	// Upload history shown in the list, newest first
	tasks      []*model.UploadTask
	tasksMutex sync.RWMutex

	// Registered plugin commands
	commands []plugin.Command

	// UI update debouncing
	lastUIUpdate  time.Time
	pendingUpdate bool
	uiUpdateMutex sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimer     *time.Timer
	notificationMutex     sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, tracker upload.Tracker, prefs *config.Preferences) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(prefs.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		tracker:      tracker,
		prefs:        prefs,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.tracker.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// AttachPlugin loads the plugin with this window as its host
func (ui *RootUI) AttachPlugin(p *plugin.Plugin) {
	ui.plugin = p
	p.Load(ui)
	p.SetMessages(ui.localization.PasteMessages())
	p.SetMaxParallel(ui.prefs.GetMaxParallelUploads())

	ui.buildSettingsDialog()

	log.Printf("Plugin loaded with %d command(s)", len(ui.commands))
}

// buildSettingsDialog creates the settings dialog in the current language
func (ui *RootUI) buildSettingsDialog() {
	ui.settingsDialog = NewSettingsDialog(ui.plugin, ui.prefs, ui.localization, ui.window)
	ui.settingsDialog.SetCallbacks(ui.onLanguageChange, ui.plugin.SetMaxParallel)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.editor = NewMarkdownEditor()
	ui.editor.SetPlaceHolder(ui.localization.GetText(KeyEditorPlaceholder))

	ui.uploadBtn = widget.NewButton(IconUpload+" "+ui.localization.GetText(KeyUploadImage), func() {
		ui.runCommand(plugin.CommandUploadImage)
	})
	ui.uploadBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(ui.settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, ui.settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, ui.uploadBtn)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	ui.uploadList = widget.NewList(
		func() int {
			ui.tasksMutex.RLock()
			defer ui.tasksMutex.RUnlock()
			return len(ui.tasks)
		},
		func() fyne.CanvasObject { return ui.createUploadItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateUploadItem(id, obj) },
	)

	ui.uploadsTitle = widget.NewLabel(ui.localization.GetText(KeyUploads))
	ui.uploadsTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearFinished), ui.onClearFinished)
	ui.clearBtn.Importance = widget.LowImportance

	uploadsPanel := container.NewBorder(
		container.NewBorder(nil, nil, nil, ui.clearBtn, ui.uploadsTitle),
		nil, nil, nil,
		ui.uploadList,
	)

	split := container.NewVSplit(ui.editor, uploadsPanel)
	split.SetOffset(EditorSplitRate)

	ui.window.SetContent(container.NewBorder(topCombined, nil, nil, nil, split))
	ui.window.SetOnDropped(ui.onDropped)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile))
	for _, cmd := range ui.commands {
		command := cmd
		fileMenu.Items = append(fileMenu.Items, fyne.NewMenuItem(ui.commandLabel(command), command.Callback))
	}
	if len(fileMenu.Items) > 0 {
		fileMenu.Items = append(fileMenu.Items, fyne.NewMenuItemSeparator())
	}
	fileMenu.Items = append(fileMenu.Items, fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings))

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.prefs.SetLanguage(langCode)
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// commandLabel returns the localized label of known commands
func (ui *RootUI) commandLabel(cmd plugin.Command) string {
	if cmd.ID == plugin.CommandUploadImage {
		return ui.localization.GetText(KeyUploadImage)
	}
	return cmd.Name
}

// runCommand invokes a registered command by id
func (ui *RootUI) runCommand(id string) {
	for _, cmd := range ui.commands {
		if cmd.ID == id && cmd.Callback != nil {
			cmd.Callback()
			return
		}
	}
	log.Printf("Command not registered: %s", id)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	if ui.plugin != nil {
		ui.plugin.SetMessages(ui.localization.PasteMessages())
		ui.buildSettingsDialog()
	}

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.editor.SetPlaceHolder(ui.localization.GetText(KeyEditorPlaceholder))
	ui.uploadBtn.SetText(IconUpload + " " + ui.localization.GetText(KeyUploadImage))
	ui.uploadsTitle.SetText(ui.localization.GetText(KeyUploads))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearFinished))

	ui.uploadList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settingsDialog == nil {
		return
	}
	ui.settingsDialog.Show()
}

// Notify displays a message in the notification panel and hides it after a delay.
// It may be called from any goroutine.
func (ui *RootUI) Notify(message string) {
	ui.notificationMutex.Lock()
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, ui.hideNotification)
	ui.notificationMutex.Unlock()

	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		ui.notificationContainer.Hide()
	})
}

// PluginData returns the preferences-backed plugin storage
func (ui *RootUI) PluginData() config.DataStore {
	return config.NewPreferencesData(ui.app)
}

// AddCommand registers a plugin command in the menu
func (ui *RootUI) AddCommand(cmd plugin.Command) {
	ui.commands = append(ui.commands, cmd)
	ui.createMenu()
}

// OnEditorPaste routes editor pastes to the plugin
func (ui *RootUI) OnEditorPaste(handler func(event *paste.Event, editor paste.Editor)) {
	ui.editor.SetOnPaste(handler)
}

// ActiveEditor returns the Markdown editor
func (ui *RootUI) ActiveEditor() paste.Editor {
	return ui.editor
}

// PickFile shows an image file dialog
func (ui *RootUI) PickFile(callback func(file *plugin.File, err error)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			callback(nil, err)
			return
		}
		if reader == nil {
			callback(nil, nil)
			return
		}
		defer func() { _ = reader.Close() }()

		data, err := io.ReadAll(reader)
		if err != nil {
			callback(nil, fmt.Errorf("read %s: %w", reader.URI().Name(), err))
			return
		}

		ui.prefs.SetLastDirectory(filepath.Dir(reader.URI().Path()))
		callback(&plugin.File{Name: reader.URI().Name(), Data: data}, nil)
	}, ui.window)

	fileDialog.SetFilter(storage.NewMimeTypeFileFilter(imageMIMEFilter))
	if dir := ui.prefs.GetLastDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fileDialog.SetLocation(lister)
		}
	}
	fileDialog.Show()
}

// onDropped offers dropped files to the paste handler
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri.Scheme() != "file" {
			continue
		}
		paths = append(paths, uri.Path())
	}
	if len(paths) == 0 {
		return
	}

	event := ui.editor.HandleDrop(paths)
	if !event.DefaultPrevented() {
		ui.Notify(ui.localization.GetText(KeyNotAnImage))
	}
}

// createUploadItem creates a new upload row widget
func (ui *RootUI) createUploadItem() fyne.CanvasObject {
	row := NewUploadRow(nil, ui.localization)
	row.SetCallbacks(ui.onCopy, ui.onRemoveTask)
	return row
}

// updateUploadItem binds a row to the task at id
func (ui *RootUI) updateUploadItem(id widget.ListItemID, item fyne.CanvasObject) {
	ui.tasksMutex.RLock()
	if id >= len(ui.tasks) {
		ui.tasksMutex.RUnlock()
		return
	}
	task := ui.tasks[id]
	ui.tasksMutex.RUnlock()

	if row, ok := item.(*UploadRow); ok {
		row.SetLocalization(ui.localization)
		row.SetCallbacks(ui.onCopy, ui.onRemoveTask)
		row.UpdateTask(task)
	}
}

// onTaskUpdate handles task updates from the upload service
func (ui *RootUI) onTaskUpdate(task *model.UploadTask) {
	if task.Status.IsFinished() {
		log.Printf("Upload %s finished: status=%s elapsed=%s", task.ID, task.Status, task.GetElapsedString())
	}
	ui.debouncedUIUpdate()
}

// debouncedUIUpdate limits list reloads to one per debounce window
func (ui *RootUI) debouncedUIUpdate() {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	if ui.pendingUpdate {
		return
	}

	wait := UIUpdateDebounce - time.Since(ui.lastUIUpdate)
	if wait < 0 {
		wait = 0
	}
	ui.pendingUpdate = true

	time.AfterFunc(wait, func() {
		ui.uiUpdateMutex.Lock()
		ui.pendingUpdate = false
		ui.lastUIUpdate = time.Now()
		ui.uiUpdateMutex.Unlock()

		ui.reloadTasks()
	})
}

// reloadTasks copies the tracker history into the list
func (ui *RootUI) reloadTasks() {
	tasks := ui.tracker.GetAllTasks()

	ui.tasksMutex.Lock()
	ui.tasks = tasks
	ui.tasksMutex.Unlock()

	fyne.Do(func() {
		ui.uploadList.Refresh()
	})
}

// onCopy puts text on the system clipboard
func (ui *RootUI) onCopy(text string) {
	if text == "" {
		ui.Notify(ui.localization.GetText(KeyNoLink))
		return
	}
	ui.app.Clipboard().SetContent(text)
	ui.Notify(ui.localization.GetText(KeyCopied))
}

// onRemoveTask removes a finished upload from the history
func (ui *RootUI) onRemoveTask(taskID string) {
	if err := ui.tracker.RemoveTask(taskID); err != nil {
		log.Printf("Failed to remove task %s: %v", taskID, err)
		return
	}
	ui.reloadTasks()
}

// onClearFinished removes all finished uploads from the history
func (ui *RootUI) onClearFinished() {
	removed := ui.tracker.ClearFinished()
	log.Printf("Cleared %d finished upload(s)", removed)
	ui.reloadTasks()
}
