package upload

import (
	"context"

	"github.com/ytget/lsky-paste/internal/model"
)

// Uploader uploads raw image bytes and returns the Markdown link for them.
// An empty token means anonymous upload.
type Uploader interface {
	Upload(ctx context.Context, image []byte, token string) (string, error)
}

// NamedUploader is implemented by uploaders that can record the original file name.
type NamedUploader interface {
	Uploader
	UploadNamed(ctx context.Context, name string, image []byte, token string) (string, error)
}

// Tracker defines the interface for the upload history used by the UI.
type Tracker interface {
	SetUpdateCallback(func(*model.UploadTask))
	GetTask(id string) (*model.UploadTask, bool)
	GetAllTasks() []*model.UploadTask
	RemoveTask(id string) error
	ClearFinished() int
}

// UploaderFunc adapts a plain function to the Uploader interface.
type UploaderFunc func(ctx context.Context, image []byte, token string) (string, error)

// Upload calls f(ctx, image, token).
func (f UploaderFunc) Upload(ctx context.Context, image []byte, token string) (string, error) {
	return f(ctx, image, token)
}
