package imaging

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func TestLoad_PNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "banana.png", 12, 8)

	img, err := Load(path, model.OriginPicker)
	require.NoError(t, err)

	assert.Equal(t, "banana.png", img.Name)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.True(t, strings.HasPrefix(img.DataURI, "data:image/png;base64,"))
	assert.Equal(t, model.OriginPicker, img.Origin)
	w, h, ok := img.Dimensions()
	assert.True(t, ok)
	assert.Equal(t, 12, w)
	assert.Equal(t, 8, h)
}

func TestLoad_Rejects(t *testing.T) {
	dir := t.TempDir()

	textFile := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("hello"), 0600))

	disguised := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(disguised, []byte("definitely not an image"), 0600))

	folder := filepath.Join(dir, "album.jpg")
	require.NoError(t, os.Mkdir(folder, 0700))

	for _, path := range []string{textFile, disguised, folder} {
		_, err := Load(path, model.OriginPicker)
		assert.ErrorIs(t, err, common.ErrInvalidImageFormat, path)
	}

	_, err := Load(filepath.Join(dir, "missing.png"), model.OriginPicker)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrInvalidImageFormat)
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed("a.PNG"))
	assert.True(t, IsAllowed("/tmp/b.jpeg"))
	assert.True(t, IsAllowed("c.webp"))
	assert.False(t, IsAllowed("d.pdf"))
	assert.False(t, IsAllowed("noext"))
}

func TestCapture(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	img, err := Capture(now)
	require.NoError(t, err)

	assert.Equal(t, "capture-20250314-092653.png", img.Name)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.True(t, img.Synthetic())
	w, h, ok := img.Dimensions()
	assert.True(t, ok)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
}

func TestParseDropped(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "plain", in: "/tmp/a.png", want: []string{"/tmp/a.png"}},
		{name: "single quoted", in: "'/tmp/my photo.png' ", want: []string{"/tmp/my photo.png"}},
		{name: "double quoted", in: `"/tmp/my photo.png"`, want: []string{"/tmp/my photo.png"}},
		{name: "escaped spaces", in: `/tmp/my\ photo.png`, want: []string{"/tmp/my photo.png"}},
		{name: "file url", in: "file:///tmp/my%20photo.png", want: []string{"/tmp/my photo.png"}},
		{name: "several", in: "/tmp/a.png /tmp/b.png\n/tmp/c.png", want: []string{"/tmp/a.png", "/tmp/b.png", "/tmp/c.png"}},
		{name: "hash inside name", in: "/tmp/bin#2.png", want: []string{"/tmp/bin#2.png"}},
		{name: "unbalanced quote", in: "'/tmp/my photo.png", want: []string{"/tmp/my photo.png"}},
		{name: "blank", in: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseDropped(tt.in)); diff != "" {
				t.Errorf("ParseDropped() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
