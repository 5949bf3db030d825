package paste

// Editor inserts text at the current cursor or selection
type Editor interface {
	ReplaceSelection(text string)
}

// Notifier shows a transient message to the user
type Notifier interface {
	Notify(message string)
}

// EditorFunc adapts a function to Editor
type EditorFunc func(text string)

// ReplaceSelection calls f(text)
func (f EditorFunc) ReplaceSelection(text string) { f(text) }

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

// Notify calls f(message)
func (f NotifierFunc) Notify(message string) { f(message) }
