package plugin

import (
	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/paste"
)

// Command is a user-invocable action registered with the host
type Command struct {
	ID       string
	Name     string
	Callback func()
}

// Host is the application the plugin is loaded into
type Host interface {
	paste.Notifier

	// PluginData returns the host key-value storage for plugin data
	PluginData() config.DataStore

	// AddCommand registers a command in the host command list
	AddCommand(cmd Command)

	// OnEditorPaste registers a handler called for every paste into the editor
	OnEditorPaste(handler func(event *paste.Event, editor paste.Editor))

	// ActiveEditor returns the editor commands insert into, or nil
	ActiveEditor() paste.Editor
}

// File is a local file chosen by the user
type File struct {
	Name string
	Data []byte
}

// FileSource lets the user pick a file. The callback receives nil when the
// selection was cancelled.
type FileSource interface {
	PickFile(callback func(file *File, err error))
}
