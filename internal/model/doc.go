package model

// Package model defines domain data structures shared by the uploader, the paste
// adapter and the UI: upload tasks and their status enum. Structures are plain
// values so the UI can bind them directly.
