// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package upload stores admin-uploaded product photos in the gallery directory.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/mozillazg/go-unidecode"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/olegiv/granite-go/internal/catalog"
	"github.com/olegiv/granite-go/internal/util"
)

// Upload errors.
var (
	ErrInvalidFilename = errors.New("invalid filename")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("file too large")
)

// allowedFormats are the image.DecodeConfig format names accepted.
var allowedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// Store writes images into a directory.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates a Store writing to dir and accepting files up to maxBytes.
func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// MaxBytes returns the size limit.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Save validates the image read from r and stores it under a sanitized
// version of filename, replacing any file with the same name.
// It returns the stored file name.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	name := SecureFilename(filename)
	if name == "" {
		return "", ErrInvalidFilename
	}
	if !catalog.IsImageFile(name) {
		return "", ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || !allowedFormats[format] {
		return "", ErrUnsupportedType
	}

	target, err := util.JoinWithin(s.dir, name)
	if err != nil {
		return "", ErrInvalidFilename
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating gallery directory: %w", err)
	}

	tmp := filepath.Join(s.dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("moving upload into place: %w", err)
	}
	return name, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// windowsDeviceNames may not be used as file names on Windows.
var windowsDeviceNames = map[string]bool{
	"CON": true, "AUX": true, "COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "PRN": true, "NUL": true,
}

// SecureFilename returns an ASCII-only file name with no path components.
// Non-ASCII text is transliterated, whitespace becomes underscores and any
// other unsafe character is dropped. The result may be empty.
func SecureFilename(filename string) string {
	s := unidecode.Unidecode(filename)
	s = strings.NewReplacer("/", " ", "\\", " ").Replace(s)
	s = strings.Join(strings.Fields(s), "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "._")

	if s != "" && windowsDeviceNames[strings.ToUpper(strings.SplitN(s, ".", 2)[0])] {
		s = "_" + s
	}
	return s
}
