package paste

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/ytget/lsky-paste/internal/platform"
)

// MIME types used for non-image items
const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
)

// Item is one file-like entry of a paste or drop
type Item struct {
	Name     string
	MIMEType string
	Data     []byte
}

// IsImage reports whether the item should be uploaded
func (i Item) IsImage() bool {
	return platform.IsImageMIME(i.MIMEType)
}

// Event is a paste event holding zero or more items
type Event struct {
	Items     []Item
	prevented bool
}

// NewEvent creates an event from items
func NewEvent(items ...Item) *Event {
	return &Event{Items: items}
}

// PreventDefault suppresses the editor's own paste handling
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// ImageCount returns how many items are images
func (e *Event) ImageCount() int {
	count := 0
	for _, item := range e.Items {
		if item.IsImage() {
			count++
		}
	}
	return count
}

// ItemFromBytes builds an item with a MIME type sniffed from the content
func ItemFromBytes(name string, data []byte) Item {
	mimeType := platform.DetectType(data).MIME
	if mimeType == "" {
		mimeType = MIMEOctetStream
	}
	return Item{Name: name, MIMEType: mimeType, Data: data}
}

// EventFromPaths reads local files into an event. Unreadable files are skipped.
func EventFromPaths(paths []string) *Event {
	event := NewEvent()
	for _, path := range paths {
		data, err := platform.ReadLocalFile(path)
		if err != nil {
			log.Printf("Skipping pasted file %s: %v", path, err)
			continue
		}
		event.Items = append(event.Items, ItemFromBytes(filepath.Base(path), data))
	}
	return event
}

// EventFromText builds an event from clipboard text. A list of local file
// URIs or paths becomes file items; anything else is a single text item.
func EventFromText(text string) *Event {
	if strings.TrimSpace(text) == "" {
		return NewEvent()
	}

	if paths := platform.ParseURIList(text); len(paths) > 0 {
		if event := EventFromPaths(paths); len(event.Items) > 0 {
			return event
		}
	}

	return NewEvent(Item{MIMEType: MIMETextPlain, Data: []byte(text)})
}
