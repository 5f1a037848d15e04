// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package upload

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, G: 150, B: 90, A: 255})
	return img
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(), nil))
	return buf.Bytes()
}

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kashmir_gold.jpg", "kashmir_gold.jpg"},
		{"My Photo.JPG", "My_Photo.JPG"},
		{"../../etc/passwd", "etc_passwd"},
		{`..\..\windows\win.ini`, "windows_win.ini"},
		{"Crème Brûlée.png", "Creme_Brulee.png"},
		{"  spaced   out  .png", "spaced_out_.png"},
		{"<script>.jpg", "script.jpg"},
		{"...", ""},
		{"", ""},
		{"CON.jpg", "_CON.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.in))
		})
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gallery")
	s := NewStore(dir, 1<<20)

	name, err := s.Save("Royal Pink.png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	assert.Equal(t, "Royal_Pink.png", name)

	_, err = os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)

	name, err = s.Save("kashmir.jpeg", bytes.NewReader(jpegBytes(t)))
	require.NoError(t, err)
	assert.Equal(t, "kashmir.jpeg", name)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, 1<<20)

	first := pngBytes(t)
	_, err := s.Save("a.png", bytes.NewReader(first))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	_, err = s.Save("a.png", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), got)
}

func TestSave_Rejects(t *testing.T) {
	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, testImage(), nil))

	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  error
	}{
		{"empty name", "...", pngBytes(t), ErrInvalidFilename},
		{"bad extension", "photo.gif", gifBuf.Bytes(), ErrUnsupportedType},
		{"gif renamed", "photo.png", gifBuf.Bytes(), ErrUnsupportedType},
		{"text renamed", "photo.jpg", []byte("not an image"), ErrUnsupportedType},
		{"no extension", "photo", pngBytes(t), ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := NewStore(dir, 1<<20).Save(tt.filename, bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestSave_TooLarge(t *testing.T) {
	data := pngBytes(t)
	s := NewStore(t.TempDir(), int64(len(data)-1))

	_, err := s.Save("big.png", bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrTooLarge)

	s = NewStore(t.TempDir(), int64(len(data)))
	_, err = s.Save("exact.png", bytes.NewReader(data))
	assert.NoError(t, err)
}
