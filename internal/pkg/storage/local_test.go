package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadDownloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Upload(ctx, strings.NewReader("hello"), "report.csv")
	require.NoError(t, err)
	assert.Equal(t, "report.csv", path)

	exists, err := s.Exists(ctx, "report.csv")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Download(ctx, "report.csv")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestLocalStorage_ListSkipsHiddenFiles(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Upload(ctx, strings.NewReader("a"), "a.csv")
	require.NoError(t, err)
	_, err = s.Upload(ctx, strings.NewReader("b"), ".b.tmp")
	require.NoError(t, err)

	files, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.csv", files[0].Name)
	assert.Equal(t, int64(1), files[0].Size)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Download(ctx, "../../etc/passwd")
	assert.Error(t, err)

	_, err = s.Upload(ctx, strings.NewReader("x"), "../escape.csv")
	assert.Error(t, err)
}
