package paste

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/upload"
)

type recordingEditor struct {
	mu       sync.Mutex
	inserted []string
}

func (e *recordingEditor) ReplaceSelection(text string) {
	e.mu.Lock()
	e.inserted = append(e.inserted, text)
	e.mu.Unlock()
}

func (e *recordingEditor) texts() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := append([]string(nil), e.inserted...)
	sort.Strings(out)
	return out
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type call struct {
	data  string
	token string
}

type fakeUploader struct {
	mu    sync.Mutex
	calls []call
	fn    func(data []byte) (string, error)
}

func (f *fakeUploader) Upload(ctx context.Context, image []byte, token string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{data: string(image), token: token})
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(image)
	}
	return "![](https://x/" + string(image) + ")", nil
}

func (f *fakeUploader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func imageItem(name string) Item {
	return Item{Name: name, MIMEType: "image/png", Data: []byte(name)}
}

func TestHandlePaste_TwoImagesOneText(t *testing.T) {
	uploader := &fakeUploader{}
	editor := &recordingEditor{}
	handler := NewHandler(uploader, nil)

	event := NewEvent(
		imageItem("a.png"),
		Item{MIMEType: MIMETextPlain, Data: []byte("hello")},
		imageItem("b.png"),
	)

	batch := handler.HandlePaste(context.Background(), event, editor, config.Settings{Token: "abc123"})
	assert.True(t, event.DefaultPrevented())
	assert.Equal(t, 2, batch.Len())

	results := batch.Wait()
	require.Len(t, results, 2)
	assert.Equal(t, 2, uploader.callCount())
	for _, c := range uploader.calls {
		assert.NotEqual(t, "hello", c.data)
		assert.Equal(t, "abc123", c.token)
	}
	assert.Equal(t, []string{"![](https://x/a.png)", "![](https://x/b.png)"}, editor.texts())
}

func TestHandlePaste_TextOnlyIsNotPrevented(t *testing.T) {
	uploader := &fakeUploader{}
	handler := NewHandler(uploader, nil)

	event := NewEvent(Item{MIMEType: MIMETextPlain, Data: []byte("hello")})
	batch := handler.HandlePaste(context.Background(), event, &recordingEditor{}, config.DefaultSettings())

	assert.False(t, event.DefaultPrevented())
	assert.Empty(t, batch.Wait())
	assert.Zero(t, uploader.callCount())
}

func TestHandlePaste_EmptyEvent(t *testing.T) {
	handler := NewHandler(&fakeUploader{}, nil)
	event := NewEvent()

	batch := handler.HandlePaste(context.Background(), event, &recordingEditor{}, config.DefaultSettings())

	assert.False(t, event.DefaultPrevented())
	select {
	case <-batch.Done():
	default:
		t.Fatal("Expected empty batch to be done immediately")
	}
}

func TestHandlePaste_FailureDoesNotBlockOthers(t *testing.T) {
	uploader := &fakeUploader{fn: func(data []byte) (string, error) {
		if string(data) == "bad.png" {
			return "", &upload.RemoteError{Message: "file too large"}
		}
		return "![](https://x/" + string(data) + ")", nil
	}}
	editor := &recordingEditor{}
	notifier := &recordingNotifier{}
	handler := NewHandler(uploader, notifier)

	event := NewEvent(imageItem("bad.png"), imageItem("good.png"))
	results := handler.HandlePaste(context.Background(), event, editor, config.DefaultSettings()).Wait()

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.Equal(t, "bad.png", results[0].Item.Name)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, "![](https://x/good.png)", results[1].Markdown)

	assert.Equal(t, []string{"![](https://x/good.png)"}, editor.texts())
	assert.Contains(t, notifier.all(), "Upload failed: file too large")
	assert.Contains(t, notifier.all(), "Image uploaded")
}

func TestHandlePaste_ReturnsBeforeUploadsFinish(t *testing.T) {
	release := make(chan struct{})
	uploader := &fakeUploader{fn: func(data []byte) (string, error) {
		<-release
		return "![](https://x/y.png)", nil
	}}
	handler := NewHandler(uploader, nil)

	batch := handler.HandlePaste(context.Background(), NewEvent(imageItem("a.png")), &recordingEditor{}, config.DefaultSettings())

	select {
	case <-batch.Done():
		t.Fatal("Expected upload to still be running")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	results := batch.Wait()
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}

func TestHandlePaste_RespectsParallelLimit(t *testing.T) {
	var mu sync.Mutex
	active, peak := 0, 0
	uploader := &fakeUploader{fn: func(data []byte) (string, error) {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return "![](https://x/y.png)", nil
	}}
	handler := NewHandler(uploader, nil, WithMaxParallel(2))

	event := NewEvent(imageItem("1"), imageItem("2"), imageItem("3"), imageItem("4"), imageItem("5"))
	handler.HandlePaste(context.Background(), event, &recordingEditor{}, config.DefaultSettings()).Wait()

	assert.Equal(t, 5, uploader.callCount())
	assert.LessOrEqual(t, peak, 2)
}

func TestHandlePaste_CustomMessages(t *testing.T) {
	notifier := &recordingNotifier{}
	handler := NewHandler(&fakeUploader{}, notifier, WithMessages(Messages{
		Uploading: "开始上传图片...",
		Uploaded:  "图片上传成功！",
		Failed:    "上传失败: %s",
	}))

	handler.HandlePaste(context.Background(), NewEvent(imageItem("a.png")), &recordingEditor{}, config.DefaultSettings()).Wait()

	assert.Equal(t, []string{"开始上传图片...", "图片上传成功！"}, notifier.all())
}

type namedUploader struct {
	fakeUploader
	names []string
}

func (n *namedUploader) UploadNamed(ctx context.Context, name string, image []byte, token string) (string, error) {
	n.mu.Lock()
	n.names = append(n.names, name)
	n.mu.Unlock()
	return n.Upload(ctx, image, token)
}

func TestHandlePaste_PassesItemName(t *testing.T) {
	uploader := &namedUploader{}
	handler := NewHandler(uploader, nil)

	handler.HandlePaste(context.Background(), NewEvent(imageItem("shot.png")), &recordingEditor{}, config.DefaultSettings()).Wait()

	assert.Equal(t, []string{"shot.png"}, uploader.names)
}

func TestHandlePaste_WithService(t *testing.T) {
	service := upload.NewService(upload.UploaderFunc(func(ctx context.Context, image []byte, token string) (string, error) {
		if token != "abc123" {
			return "", errors.New("unexpected token")
		}
		return "![](https://x/y.png)", nil
	}))
	handler := NewHandler(service, nil)

	results := handler.HandlePaste(context.Background(), NewEvent(imageItem("a.png")), &recordingEditor{}, config.Settings{Token: "abc123"}).Wait()

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	tasks := service.GetAllTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "a.png", tasks[0].Name)
}

func TestHandlePaste_SetMaxParallel(t *testing.T) {
	var mu sync.Mutex
	active, peak := 0, 0
	uploader := &fakeUploader{fn: func(data []byte) (string, error) {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return "![](https://x/y.png)", nil
	}}
	handler := NewHandler(uploader, nil, WithMaxParallel(4))
	handler.SetMaxParallel(1)
	handler.SetMaxParallel(0)

	event := NewEvent(imageItem("1"), imageItem("2"), imageItem("3"))
	handler.HandlePaste(context.Background(), event, &recordingEditor{}, config.DefaultSettings()).Wait()

	assert.Equal(t, 1, peak)
}
