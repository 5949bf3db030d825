package paste

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/upload"
)

// MaxParallelUploads is the default number of images of one event uploaded at once
const MaxParallelUploads = 3

// Messages are the notification texts shown around each upload
type Messages struct {
	Uploading string
	Uploaded  string
	// Failed is a format string receiving the error message
	Failed string
}

// DefaultMessages returns the English notification texts
func DefaultMessages() Messages {
	return Messages{
		Uploading: "Uploading image...",
		Uploaded:  "Image uploaded",
		Failed:    "Upload failed: %s",
	}
}

// Result is the outcome of one uploaded item
type Result struct {
	Item     Item
	Markdown string
	Err      error
}

// Batch tracks the uploads started by one paste event
type Batch struct {
	done    chan struct{}
	results []Result
}

func newBatch(size int) *Batch {
	return &Batch{
		done:    make(chan struct{}),
		results: make([]Result, size),
	}
}

// Len returns how many uploads the batch holds
func (b *Batch) Len() int {
	return len(b.results)
}

// Done is closed once every upload of the batch has finished
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until all uploads finish and returns their results in item order
func (b *Batch) Wait() []Result {
	<-b.done
	return b.results
}

// Handler uploads the image items of paste events
type Handler struct {
	uploader    upload.Uploader
	notifier    Notifier
	messages    Messages
	maxParallel int
}

// Option configures a Handler
type Option func(*Handler)

// WithMessages sets the notification texts
func WithMessages(messages Messages) Option {
	return func(h *Handler) {
		h.messages = messages
	}
}

// WithMaxParallel limits concurrent uploads per event
func WithMaxParallel(limit int) Option {
	return func(h *Handler) {
		if limit > 0 {
			h.maxParallel = limit
		}
	}
}

// NewHandler creates a paste handler. A nil notifier discards notifications.
func NewHandler(uploader upload.Uploader, notifier Notifier, opts ...Option) *Handler {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	h := &Handler{
		uploader:    uploader,
		notifier:    notifier,
		messages:    DefaultMessages(),
		maxParallel: MaxParallelUploads,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetMessages replaces the notification texts, e.g. after a language change
func (h *Handler) SetMessages(messages Messages) {
	h.messages = messages
}

// SetMaxParallel changes the upload limit for later events
func (h *Handler) SetMaxParallel(limit int) {
	if limit > 0 {
		h.maxParallel = limit
	}
}

// HandlePaste suppresses the default paste when the event has image items and
// starts one upload per image. It returns without waiting for the uploads.
// Non-image items are ignored; an event without images is left untouched.
func (h *Handler) HandlePaste(ctx context.Context, event *Event, editor Editor, settings config.Settings) *Batch {
	var images []Item
	for _, item := range event.Items {
		if !item.IsImage() {
			continue
		}
		event.PreventDefault()
		images = append(images, item)
	}

	batch := newBatch(len(images))
	if len(images) == 0 {
		close(batch.done)
		return batch
	}

	token := settings.Token
	messages := h.messages
	limit := h.maxParallel

	go func() {
		defer close(batch.done)

		var g errgroup.Group
		g.SetLimit(limit)
		for i, item := range images {
			g.Go(func() error {
				batch.results[i] = h.uploadItem(ctx, item, editor, token, messages)
				return nil
			})
		}
		_ = g.Wait()
	}()

	return batch
}

// uploadItem uploads one image and reports the outcome
func (h *Handler) uploadItem(ctx context.Context, item Item, editor Editor, token string, messages Messages) Result {
	h.notify(messages.Uploading)

	markdown, err := h.upload(ctx, item, token)
	if err != nil {
		log.Printf("Upload error: %v", err)
		h.notify(fmt.Sprintf(messages.Failed, err.Error()))
		return Result{Item: item, Err: err}
	}

	editor.ReplaceSelection(markdown)
	h.notify(messages.Uploaded)
	return Result{Item: item, Markdown: markdown}
}

// upload passes the item name through when the uploader records names
func (h *Handler) upload(ctx context.Context, item Item, token string) (string, error) {
	if named, ok := h.uploader.(upload.NamedUploader); ok {
		return named.UploadNamed(ctx, item.Name, item.Data, token)
	}
	return h.uploader.Upload(ctx, item.Data, token)
}

func (h *Handler) notify(message string) {
	if message != "" {
		h.notifier.Notify(message)
	}
}
