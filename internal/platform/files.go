package platform

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSWindows = "windows"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0600
)

// URI list constants (RFC 2483 text/uri-list)
const (
	FileURIScheme     = "file"
	URIListComment    = "#"
	AndroidPictureDir = "/sdcard/Pictures"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ReadLocalFile reads a regular file fully into memory
func ReadLocalFile(filePath string) ([]byte, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("file does not exist: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return data, nil
}

// ParseURIList interprets clipboard text as a list of local files.
// Every non-comment line must be a file:// URI or an absolute path, otherwise
// the text is treated as plain text and nil is returned.
func ParseURIList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var paths []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, URIListComment) {
			continue
		}

		path, ok := localPathFromLine(line)
		if !ok {
			return nil
		}
		paths = append(paths, path)
	}

	return paths
}

// localPathFromLine converts a single uri-list line to a local path
func localPathFromLine(line string) (string, bool) {
	if strings.HasPrefix(line, FileURIScheme+"://") {
		parsed, err := url.Parse(line)
		if err != nil || parsed.Path == "" {
			return "", false
		}
		if parsed.Host != "" && parsed.Host != "localhost" {
			return "", false
		}
		path := parsed.Path
		// file:///C:/dir/file.png
		if runtime.GOOS == OSWindows && len(path) > 2 && path[0] == '/' && path[2] == ':' {
			path = path[1:]
		}
		return filepath.FromSlash(path), true
	}

	if filepath.IsAbs(line) {
		return filepath.Clean(line), true
	}

	return "", false
}

// GetHomePicturesDir returns the standard Pictures directory for the user
func GetHomePicturesDir() (string, error) {
	isAndroid := runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != ""

	if isAndroid {
		return AndroidPictureDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Pictures"), nil
}
