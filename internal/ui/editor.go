package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lsky-paste/internal/paste"
)

// MarkdownEditor is a multi-line entry that offers pastes to a paste handler
// before falling back to the normal text paste
type MarkdownEditor struct {
	widget.Entry

	onPaste func(event *paste.Event, editor paste.Editor)
}

// NewMarkdownEditor creates an empty editor
func NewMarkdownEditor() *MarkdownEditor {
	e := &MarkdownEditor{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

// SetOnPaste sets the handler that receives every paste event
func (e *MarkdownEditor) SetOnPaste(handler func(event *paste.Event, editor paste.Editor)) {
	e.onPaste = handler
}

// TypedShortcut intercepts paste; other shortcuts go to the entry
func (e *MarkdownEditor) TypedShortcut(shortcut fyne.Shortcut) {
	pasteShortcut, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok || e.onPaste == nil || pasteShortcut.Clipboard == nil {
		e.Entry.TypedShortcut(shortcut)
		return
	}

	event := paste.EventFromText(pasteShortcut.Clipboard.Content())
	e.onPaste(event, e)
	if !event.DefaultPrevented() {
		e.Entry.TypedShortcut(shortcut)
	}
}

// HandleDrop offers dropped files to the paste handler
func (e *MarkdownEditor) HandleDrop(paths []string) *paste.Event {
	event := paste.EventFromPaths(paths)
	if e.onPaste != nil && len(event.Items) > 0 {
		e.onPaste(event, e)
	}
	return event
}

// ReplaceSelection inserts text at the cursor, replacing the selection.
// It may be called from any goroutine.
func (e *MarkdownEditor) ReplaceSelection(text string) {
	fyne.Do(func() {
		e.insertText(text)
	})
}

// insertText reuses the entry's paste path so cursor and selection are handled the same way
func (e *MarkdownEditor) insertText(text string) {
	e.Entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: textClipboard(text)})
}

// textClipboard is a read-only clipboard holding fixed text
type textClipboard string

func (c textClipboard) Content() string { return string(c) }

func (c textClipboard) SetContent(string) {}
