package upload

// Package upload implements the image upload pipeline: a multipart HTTP client for
// the Lsky Pro upload endpoint, typed errors for every failure kind, and a task
// service that records each upload for the UI.
