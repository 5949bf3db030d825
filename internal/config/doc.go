// Package config loads and persists the uploader settings and the desktop UI preferences.
package config
