// Package plugin wires the uploader into a host application: it loads the settings,
// registers the upload command and handles editor paste events.
package plugin

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/paste"
	"github.com/ytget/lsky-paste/internal/upload"
)

// Upload command registration
const (
	CommandUploadImage     = "upload-image"
	CommandUploadImageName = "Upload image to Lsky"
)

// Plugin is the image uploader loaded into a host
type Plugin struct {
	uploader  upload.Uploader
	files     FileSource
	pasteOpts []paste.Option

	host     Host
	store    *config.Store
	handler *paste.Handler

	mu       sync.RWMutex
	settings config.Settings
	messages paste.Messages
}

// Option configures a Plugin
type Option func(*Plugin)

// WithFileSource sets where the upload command gets its file from
func WithFileSource(files FileSource) Option {
	return func(p *Plugin) {
		p.files = files
	}
}

// WithPasteOptions passes options to the paste handler
func WithPasteOptions(opts ...paste.Option) Option {
	return func(p *Plugin) {
		p.pasteOpts = append(p.pasteOpts, opts...)
	}
}

// New creates a plugin around an uploader
func New(uploader upload.Uploader, opts ...Option) *Plugin {
	p := &Plugin{
		uploader: uploader,
		messages: paste.DefaultMessages(),
		settings: config.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads the settings and registers the command and paste handler.
// Unreadable settings fall back to the defaults.
func (p *Plugin) Load(host Host) {
	p.host = host
	p.store = config.NewStore(host.PluginData())

	settings, err := p.store.Load()
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
	}
	p.mu.Lock()
	p.settings = settings
	p.mu.Unlock()

	p.handler = paste.NewHandler(p.uploader, host, append(p.pasteOpts, paste.WithMessages(p.currentMessages()))...)

	host.AddCommand(Command{
		ID:       CommandUploadImage,
		Name:     CommandUploadImageName,
		Callback: p.runUploadCommand,
	})
	host.OnEditorPaste(p.handlePaste)
}

// Settings returns a copy of the current settings
func (p *Plugin) Settings() config.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// SetToken updates the token and persists it immediately
func (p *Plugin) SetToken(token string) error {
	p.mu.Lock()
	p.settings.Token = token
	settings := p.settings
	p.mu.Unlock()

	if p.store == nil {
		return fmt.Errorf("plugin not loaded")
	}
	return p.store.Save(settings)
}

// SetMessages replaces the notification texts
func (p *Plugin) SetMessages(messages paste.Messages) {
	p.mu.Lock()
	p.messages = messages
	p.mu.Unlock()
	if p.handler != nil {
		p.handler.SetMessages(messages)
	}
}

func (p *Plugin) currentMessages() paste.Messages {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.messages
}

// SetMaxParallel changes how many images of one paste upload at once
func (p *Plugin) SetMaxParallel(limit int) {
	if p.handler != nil {
		p.handler.SetMaxParallel(limit)
	}
}

// UploadImage uploads a file with the current settings.
// A nil file is a no-op returning an empty link.
func (p *Plugin) UploadImage(ctx context.Context, file *File) (string, error) {
	return p.UploadImageWith(ctx, file, p.Settings())
}

// UploadImageWith uploads a file with explicitly passed settings
func (p *Plugin) UploadImageWith(ctx context.Context, file *File, settings config.Settings) (string, error) {
	if file == nil {
		return "", nil
	}

	var (
		markdown string
		err      error
	)
	if named, ok := p.uploader.(upload.NamedUploader); ok {
		markdown, err = named.UploadNamed(ctx, file.Name, file.Data, settings.Token)
	} else {
		markdown, err = p.uploader.Upload(ctx, file.Data, settings.Token)
	}
	if err != nil {
		log.Printf("Upload error: %v", err)
		return "", err
	}
	return markdown, nil
}

// handlePaste runs the paste handler with a snapshot of the settings
func (p *Plugin) handlePaste(event *paste.Event, editor paste.Editor) {
	p.handler.HandlePaste(context.Background(), event, editor, p.Settings())
}

// runUploadCommand uploads a user-picked file and inserts the link into the active editor
func (p *Plugin) runUploadCommand() {
	if p.files == nil {
		_, _ = p.UploadImage(context.Background(), nil)
		return
	}

	p.files.PickFile(func(file *File, err error) {
		if err != nil {
			p.host.Notify(fmt.Sprintf(p.currentMessages().Failed, err.Error()))
			return
		}
		if file == nil {
			return
		}

		editor := p.host.ActiveEditor()
		if editor == nil {
			return
		}

		item := paste.ItemFromBytes(file.Name, file.Data)
		if !item.IsImage() {
			p.host.Notify(fmt.Sprintf(p.currentMessages().Failed, "not an image: "+file.Name))
			return
		}
		p.handler.HandlePaste(context.Background(), paste.NewEvent(item), editor, p.Settings())
	})
}
