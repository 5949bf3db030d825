// Package paste connects editor paste events to the uploader. Image items of an event
// suppress the default paste and are uploaded independently; each returned Markdown
// link is inserted at the cursor and each failure is reported through a notifier.
package paste
