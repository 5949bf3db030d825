package model

import (
	"fmt"
	"strings"
	"time"
)

// UploadTask represents a single image upload
type UploadTask struct {
	ID         string
	Name       string // original file name, empty for raw clipboard data
	MIMEType   string // sniffed MIME type of the image bytes
	Size       int64  // image size in bytes
	Width      int    // pixel width, 0 if unknown
	Height     int    // pixel height, 0 if unknown
	Status     TaskStatus
	Markdown   string // Markdown link returned by the server
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the file name, or a title derived from the MIME type
func (ut *UploadTask) GetDisplayTitle() string {
	if name := strings.TrimSpace(ut.Name); name != "" {
		return name
	}

	if subtype, ok := strings.CutPrefix(ut.MIMEType, "image/"); ok && subtype != "" {
		return strings.ToUpper(subtype) + " image"
	}

	return "Image"
}

// GetDimensionsString returns dimensions formatted as WxH, or "—" if unknown
func (ut *UploadTask) GetDimensionsString() string {
	if ut.Width <= 0 || ut.Height <= 0 {
		return "—"
	}
	return fmt.Sprintf("%d×%d", ut.Width, ut.Height)
}

// GetElapsedString returns how long the request took, or "—" if it has not finished
func (ut *UploadTask) GetElapsedString() string {
	if ut.StartedAt.IsZero() || ut.FinishedAt.IsZero() {
		return "—"
	}

	elapsed := ut.FinishedAt.Sub(ut.StartedAt)
	if elapsed < time.Second {
		return fmt.Sprintf("%dms", elapsed.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", elapsed.Seconds())
}
