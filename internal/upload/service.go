package upload

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/lsky-paste/internal/model"
	"github.com/ytget/lsky-paste/internal/platform"
)

// TaskIDPrefix prefixes generated upload task ids
const TaskIDPrefix = "upload-"

// Service records every upload as a task and forwards the call to an Uploader
type Service struct {
	uploader   Uploader
	tasks      map[string]*model.UploadTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.UploadTask) // callback for UI updates
}

// NewService creates a new upload service
func NewService(uploader Uploader) *Service {
	return &Service{
		uploader: uploader,
		tasks:    make(map[string]*model.UploadTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.UploadTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// Upload uploads image bytes without a file name
func (s *Service) Upload(ctx context.Context, image []byte, token string) (string, error) {
	return s.UploadNamed(ctx, "", image, token)
}

// UploadNamed uploads image bytes and records the attempt under the given name
func (s *Service) UploadNamed(ctx context.Context, name string, image []byte, token string) (string, error) {
	task := s.newTask(name, image)

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	s.setStatus(task, model.TaskStatusUploading)

	markdown, err := s.uploader.Upload(ctx, image, token)

	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.Markdown = markdown
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	if err != nil {
		return "", err
	}
	return markdown, nil
}

// GetTask returns a copy of the task with the given id
func (s *Service) GetTask(id string) (*model.UploadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// GetAllTasks returns copies of all tasks, newest first
func (s *Service) GetAllTasks() []*model.UploadTask {
	s.tasksMutex.RLock()
	tasks := make([]*model.UploadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	s.tasksMutex.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].StartedAt.After(tasks[j].StartedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})
	return tasks
}

// RemoveTask removes a finished task from the history
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status.IsActive() {
		return fmt.Errorf("task is still active: %s", task.Status)
	}

	delete(s.tasks, id)
	return nil
}

// ClearFinished removes all finished tasks and returns how many were removed
func (s *Service) ClearFinished() int {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	removed := 0
	for id, task := range s.tasks {
		if task.Status.IsFinished() {
			delete(s.tasks, id)
			removed++
		}
	}
	return removed
}

// newTask builds a pending task, sniffing type and dimensions from the bytes
func (s *Service) newTask(name string, image []byte) *model.UploadTask {
	task := &model.UploadTask{
		ID:        generateTaskID(),
		Name:      name,
		MIMEType:  platform.DetectType(image).MIME,
		Size:      int64(len(image)),
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	if width, height, err := platform.ImageDimensions(image); err == nil {
		task.Width = width
		task.Height = height
	}

	return task
}

// setStatus updates the task status and notifies
func (s *Service) setStatus(task *model.UploadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback with a snapshot of the task
func (s *Service) notifyUpdate(task *model.UploadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&snapshot)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
