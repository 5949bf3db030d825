package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/lsky-paste/internal/markdown"
	"github.com/ytget/lsky-paste/internal/model"
)

// UploadRow represents a compact upload history row widget
type UploadRow struct {
	widget.BaseWidget

	task         *model.UploadTask
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	statusLabel *widget.Label
	detailLabel *widget.Label

	// Action buttons
	copyMarkdownBtn *widget.Button
	copyURLBtn      *widget.Button
	removeBtn       *widget.Button

	// Callbacks
	onCopy   func(text string)
	onRemove func(taskID string)
}

// NewUploadRow creates a new upload row widget
func NewUploadRow(task *model.UploadTask, localization *Localization) *UploadRow {
	if task == nil {
		task = &model.UploadTask{Status: model.TaskStatusPending}
	}

	ur := &UploadRow{
		task:         task,
		localization: localization,
	}
	ur.ExtendBaseWidget(ur)
	ur.createUI()
	ur.updateFromTask()
	return ur
}

// SetCallbacks sets the action callbacks
func (ur *UploadRow) SetCallbacks(onCopy func(text string), onRemove func(taskID string)) {
	ur.onCopy = onCopy
	ur.onRemove = onRemove
}

// SetLocalization switches the button texts to another language
func (ur *UploadRow) SetLocalization(localization *Localization) {
	ur.localization = localization
	ur.copyMarkdownBtn.SetText(IconCopy + " " + localization.GetText(KeyCopyMarkdown))
	ur.copyURLBtn.SetText(IconLink + " " + localization.GetText(KeyCopyURL))
}

// UpdateTask updates the row with new task data
func (ur *UploadRow) UpdateTask(task *model.UploadTask) {
	if task == nil {
		return
	}
	ur.task = task
	ur.updateFromTask()
	ur.Refresh()
}

// createUI builds the row widgets
func (ur *UploadRow) createUI() {
	ur.titleLabel = widget.NewLabel("")
	ur.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ur.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ur.statusLabel = widget.NewLabel("")
	ur.statusLabel.Alignment = fyne.TextAlignTrailing

	ur.detailLabel = widget.NewLabel("")
	ur.detailLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ur.detailLabel.Truncation = fyne.TextTruncateEllipsis

	ur.copyMarkdownBtn = widget.NewButton(IconCopy+" "+ur.localization.GetText(KeyCopyMarkdown), func() {
		if ur.onCopy != nil && ur.task.Markdown != "" {
			ur.onCopy(ur.task.Markdown)
		}
	})

	ur.copyURLBtn = widget.NewButton(IconLink+" "+ur.localization.GetText(KeyCopyURL), func() {
		if ur.onCopy == nil {
			return
		}
		url, err := markdown.ImageURL(ur.task.Markdown)
		if err != nil {
			return
		}
		ur.onCopy(url)
	})

	ur.removeBtn = widget.NewButton(IconClose, func() {
		if ur.onRemove != nil {
			ur.onRemove(ur.task.ID)
		}
	})
	ur.removeBtn.Importance = widget.LowImportance
}

// updateFromTask refreshes the labels and buttons from the task
func (ur *UploadRow) updateFromTask() {
	ur.titleLabel.SetText(ur.task.GetDisplayTitle())

	switch ur.task.Status {
	case model.TaskStatusError:
		ur.statusLabel.Importance = widget.DangerImportance
		ur.statusLabel.SetText(IconError + " " + ur.task.Status.String())
	case model.TaskStatusCompleted:
		ur.statusLabel.Importance = widget.SuccessImportance
		ur.statusLabel.SetText(IconDone + " " + ur.task.Status.String())
	case model.TaskStatusUploading:
		ur.statusLabel.Importance = widget.HighImportance
		ur.statusLabel.SetText(IconUpload + " " + ur.task.Status.String())
	default:
		ur.statusLabel.Importance = widget.MediumImportance
		ur.statusLabel.SetText(IconPending + " " + ur.task.Status.String())
	}

	ur.detailLabel.SetText(uploadDetails(ur.task))

	if ur.task.Status == model.TaskStatusCompleted && ur.task.Markdown != "" {
		ur.copyMarkdownBtn.Enable()
		ur.copyURLBtn.Enable()
	} else {
		ur.copyMarkdownBtn.Disable()
		ur.copyURLBtn.Disable()
	}

	if ur.task.Status.IsFinished() {
		ur.removeBtn.Enable()
	} else {
		ur.removeBtn.Disable()
	}
}

// uploadDetails joins size, dimensions, duration and the error of a task
func uploadDetails(task *model.UploadTask) string {
	parts := []string{humanize.Bytes(uint64(task.Size))}
	if task.Width > 0 && task.Height > 0 {
		parts = append(parts, task.GetDimensionsString())
	}
	if task.Status.IsFinished() {
		parts = append(parts, task.GetElapsedString())
	}
	if task.Status == model.TaskStatusError && task.LastError != "" {
		parts = append(parts, task.LastError)
	}
	if task.Status == model.TaskStatusCompleted && task.Markdown != "" {
		parts = append(parts, task.Markdown)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// CreateRenderer lays out title and status on top, details and actions below
func (ur *UploadRow) CreateRenderer() fyne.WidgetRenderer {
	status := container.NewGridWrap(fyne.NewSize(StatusLabelWidth, ur.statusLabel.MinSize().Height), ur.statusLabel)
	top := container.NewBorder(nil, nil, nil, container.NewHBox(status, ur.removeBtn), ur.titleLabel)
	bottom := container.NewBorder(nil, nil, nil, container.NewHBox(ur.copyMarkdownBtn, ur.copyURLBtn), ur.detailLabel)
	return widget.NewSimpleRenderer(container.NewVBox(top, bottom))
}

// MinSize keeps rows readable in narrow windows
func (ur *UploadRow) MinSize() fyne.Size {
	ur.ExtendBaseWidget(ur)
	size := ur.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}
