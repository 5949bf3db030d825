package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/upload"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type lskyStub struct {
	mu     sync.Mutex
	tokens []string
	body   string
}

func newLskyStub(t *testing.T, body string) (*lskyStub, *httptest.Server) {
	t.Helper()

	stub := &lskyStub{body: body}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.tokens = append(stub.tokens, r.Header.Get("Authorization"))
		stub.mu.Unlock()
		_, _ = w.Write([]byte(stub.body))
	}))
	t.Cleanup(server.Close)
	return stub, server
}

func (s *lskyStub) requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tokens...)
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func run(t *testing.T, deps *Dependencies, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(deps)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testDeps(t *testing.T, endpoint string) *Dependencies {
	t.Helper()
	t.Setenv(config.EnvToken, "")
	return &Dependencies{
		Uploader: upload.NewClient(upload.WithEndpoint(endpoint)),
		Data:     config.NewFileData(filepath.Join(t.TempDir(), config.DataFileName)),
	}
}

const successBody = `{"status":true,"data":{"links":{"markdown":"![](https://x/y.png)"}}}`

func TestUpload_PrintsMarkdown(t *testing.T) {
	stub, server := newLskyStub(t, successBody)
	deps := testDeps(t, server.URL)
	path := writeFile(t, t.TempDir(), "shot.png", pngHeader)

	stdout, _, err := run(t, deps, "--token", "abc123", path)

	require.NoError(t, err)
	assert.Equal(t, "![](https://x/y.png)\n", stdout)
	assert.Equal(t, []string{"Bearer abc123"}, stub.requests())
}

func TestUpload_URLFlag(t *testing.T) {
	_, server := newLskyStub(t, successBody)
	deps := testDeps(t, server.URL)
	path := writeFile(t, t.TempDir(), "shot.png", pngHeader)

	stdout, _, err := run(t, deps, "--url", path)

	require.NoError(t, err)
	assert.Equal(t, "https://x/y.png\n", stdout)
}

func TestUpload_RejectsNonImageBeforeUploading(t *testing.T) {
	stub, server := newLskyStub(t, successBody)
	deps := testDeps(t, server.URL)
	dir := t.TempDir()
	image := writeFile(t, dir, "shot.png", pngHeader)
	text := writeFile(t, dir, "notes.txt", []byte("hello"))

	_, _, err := run(t, deps, image, text)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an image")
	assert.Empty(t, stub.requests())
}

func TestUpload_ReportsRemoteFailure(t *testing.T) {
	_, server := newLskyStub(t, `{"status":false,"message":"file too large"}`)
	deps := testDeps(t, server.URL)
	path := writeFile(t, t.TempDir(), "shot.png", pngHeader)

	stdout, stderr, err := run(t, deps, path)

	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "shot.png: file too large")
	assert.NotContains(t, stderr, "Usage:")
	assert.NotContains(t, stderr, "Error:")
	assert.Contains(t, err.Error(), "1 of 1 uploads failed")
}

func TestUpload_LooseRejectionEnvelope(t *testing.T) {
	_, server := newLskyStub(t, `{"status":false,"message":"file too large","data":[]}`)
	deps := testDeps(t, server.URL)
	path := writeFile(t, t.TempDir(), "shot.png", pngHeader)

	stdout, stderr, err := run(t, deps, path)

	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "shot.png: file too large\n", stderr)
}

func TestUpload_UsesSavedToken(t *testing.T) {
	stub, server := newLskyStub(t, successBody)
	deps := testDeps(t, server.URL)
	path := writeFile(t, t.TempDir(), "shot.png", pngHeader)

	_, _, err := run(t, deps, "token", "set", "saved")
	require.NoError(t, err)

	_, _, err = run(t, deps, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer saved"}, stub.requests())
}

func TestUpload_EnvTokenOverridesSaved(t *testing.T) {
	stub, server := newLskyStub(t, successBody)
	deps := testDeps(t, server.URL)
	path := writeFile(t, t.TempDir(), "shot.png", pngHeader)

	_, _, err := run(t, deps, "token", "set", "saved")
	require.NoError(t, err)

	t.Setenv(config.EnvToken, "fromenv")
	_, _, err = run(t, deps, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer fromenv"}, stub.requests())
}

func TestToken_ShowAndClear(t *testing.T) {
	deps := testDeps(t, "http://127.0.0.1:0")

	stdout, _, err := run(t, deps, "token", "show")
	require.NoError(t, err)
	assert.Equal(t, "(not set)", strings.TrimSpace(stdout))

	_, _, err = run(t, deps, "token", "set", "abc123")
	require.NoError(t, err)

	stdout, _, err = run(t, deps, "token", "show")
	require.NoError(t, err)
	assert.Equal(t, "abc123", strings.TrimSpace(stdout))

	_, _, err = run(t, deps, "token", "clear")
	require.NoError(t, err)

	stdout, _, err = run(t, deps, "token", "show")
	require.NoError(t, err)
	assert.Equal(t, "(not set)", strings.TrimSpace(stdout))
}

func TestUpload_RequiresFiles(t *testing.T) {
	deps := testDeps(t, "http://127.0.0.1:0")

	_, _, err := run(t, deps)
	assert.Error(t, err)
}
