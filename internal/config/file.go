package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ytget/lsky-paste/internal/platform"
)

// File store location under the user config directory
const (
	AppDirName   = "lsky-paste"
	DataFileName = "data.json"
)

// FileData stores plugin data as a JSON file
type FileData struct {
	path string
}

// NewFileData creates a file-backed data store at path
func NewFileData(path string) *FileData {
	return &FileData{path: path}
}

// DefaultDataPath returns <UserConfigDir>/lsky-paste/data.json
func DefaultDataPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, DataFileName), nil
}

// Path returns the file location
func (f *FileData) Path() string {
	return f.path
}

// LoadData reads the file. A missing file is not an error.
func (f *FileData) LoadData() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SaveData writes the file, creating its directory if needed
func (f *FileData) SaveData(data []byte) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(f.path, data, platform.DefaultFilePermissions)
}
