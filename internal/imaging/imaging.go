// Package imaging loads user-supplied images into the form the upload flow
// stages, and synthesizes the placeholder image of the simulated camera.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Registered for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/google/shlex"
)

// MaxSize bounds the bytes read for one image.
const MaxSize = 20 << 20

// AllowedExtensions lists the file extensions the picker offers.
var AllowedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

// IsAllowed reports whether path has an image extension.
func IsAllowed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Load reads and decodes the image at path.
func Load(path string, origin model.ImageOrigin) (model.StagedImage, error) {
	if !IsAllowed(path) {
		return model.StagedImage{}, fmt.Errorf("%w: %s", common.ErrInvalidImageFormat, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return model.StagedImage{}, fmt.Errorf("failed to stat image: %w", err)
	}
	if info.IsDir() {
		return model.StagedImage{}, fmt.Errorf("%w: %s is a directory", common.ErrInvalidImageFormat, filepath.Base(path))
	}
	if info.Size() > MaxSize {
		return model.StagedImage{}, fmt.Errorf("%w: %s exceeds %d bytes", common.ErrInvalidImageFormat, filepath.Base(path), MaxSize)
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-selected file
	if err != nil {
		return model.StagedImage{}, fmt.Errorf("failed to read image: %w", err)
	}

	return Decode(filepath.Base(path), data, origin)
}

// Decode sniffs data, rejects anything that is not an image and returns it
// as a data URI.
func Decode(name string, data []byte, origin model.ImageOrigin) (model.StagedImage, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return model.StagedImage{}, fmt.Errorf("%w: %s is %s", common.ErrInvalidImageFormat, name, mime)
	}

	img := model.StagedImage{
		Name:     name,
		MIMEType: mime,
		DataURI:  "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		Origin:   origin,
		Size:     int64(len(data)),
	}

	// webp and bmp have no stdlib decoder; dimensions stay unknown.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width = cfg.Width
		img.Height = cfg.Height
	}

	return img, nil
}

// Capture synthesizes the placeholder frame of the simulated camera.
func Capture(now time.Time) (model.StagedImage, error) {
	const w, h = 64, 48

	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			frame.Set(x, y, color.RGBA{R: 0x10, G: uint8(0x80 + y), B: uint8(0x60 + x), A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return model.StagedImage{}, fmt.Errorf("failed to encode capture: %w", err)
	}

	img, err := Decode(fmt.Sprintf("capture-%s.png", now.UTC().Format("20060102-150405")), buf.Bytes(), model.OriginCapture)
	if err != nil {
		return model.StagedImage{}, fmt.Errorf("failed to decode capture: %w", err)
	}
	return img, nil
}

// ParseDropped splits text pasted into the terminal into file paths.
// Terminals deliver a dragged file as a quoted path, a path with escaped
// spaces, or a file:// URL; several files arrive separated by whitespace.
// Text with an unbalanced quote is taken as a single path.
func ParseDropped(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	words, err := shlex.Split(text)
	if err != nil {
		words = []string{strings.Trim(text, `'"`)}
	}

	var paths []string
	for _, w := range words {
		if w != "" {
			paths = append(paths, normalizeDropped(w))
		}
	}
	return paths
}

func normalizeDropped(p string) string {
	if !strings.HasPrefix(p, "file://") {
		return p
	}
	u, err := url.Parse(p)
	if err != nil || u.Path == "" {
		return strings.TrimPrefix(p, "file://")
	}
	return u.Path
}
