package model

// TaskStatus represents the status of an upload task
type TaskStatus string

const (
	// TaskStatusPending means the task was created but the request has not been sent
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusUploading means the request is in flight
	TaskStatusUploading TaskStatus = "Uploading"

	// TaskStatusCompleted means the server returned a Markdown link
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the upload failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is waiting for the server
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusUploading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
