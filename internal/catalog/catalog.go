// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package catalog builds the product gallery from the image files in the
// gallery directory.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFeatured is the number of images shown on the home page.
const DefaultFeatured = 6

// Listing is one product card.
type Listing struct {
	Filename     string
	Title        string
	ImageURL     string
	Category     string
	Description  string
	Availability string
	Thickness    string
	Finish       string
}

// Reader lists gallery images.
type Reader struct {
	dir       string
	urlPrefix string
}

// NewReader creates a Reader for dir. Image URLs are urlPrefix joined with the file name.
func NewReader(dir, urlPrefix string) *Reader {
	return &Reader{dir: dir, urlPrefix: urlPrefix}
}

// Dir returns the gallery directory.
func (r *Reader) Dir() string {
	return r.dir
}

// List returns a listing for every image in the gallery, sorted by title.
// A missing gallery directory yields an empty list.
func (r *Reader) List() ([]Listing, error) {
	files, err := r.imageFiles()
	if err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(files))
	for _, name := range files {
		title := TitleFromFilename(name)
		l := Listing{
			Filename:     name,
			Title:        title,
			ImageURL:     r.imageURL(name),
			Category:     CategoryFor(title),
			Description:  DescriptionFor(title),
			Availability: InStock,
			Thickness:    thicknesses[rand.IntN(len(thicknesses))],
			Finish:       finishes[rand.IntN(len(finishes))],
		}
		// Three in four stones are in stock.
		if rand.IntN(4) == 0 {
			l.Availability = LimitedStock
		}
		listings = append(listings, l)
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Title < listings[j].Title
	})
	return listings, nil
}

// Featured returns up to n randomly chosen images for the home page.
// n <= 0 means DefaultFeatured.
func (r *Reader) Featured(n int) ([]Listing, error) {
	if n <= 0 {
		n = DefaultFeatured
	}

	files, err := r.imageFiles()
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(files), func(i, j int) { files[i], files[j] = files[j], files[i] })
	if len(files) > n {
		files = files[:n]
	}

	listings := make([]Listing, 0, len(files))
	for _, name := range files {
		listings = append(listings, Listing{
			Filename: name,
			Title:    TitleFromFilename(name),
			ImageURL: r.imageURL(name),
			Category: DefaultCategory,
		})
	}
	return listings, nil
}

// imageFiles returns the names of the image files in the gallery directory.
func (r *Reader) imageFiles() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading gallery: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

func (r *Reader) imageURL(name string) string {
	return path.Join(r.urlPrefix, url.PathEscape(name))
}

// IsImageFile reports whether name has a gallery image extension.
func IsImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

var separators = strings.NewReplacer("_", " ", "-", " ")

// TitleFromFilename turns "kashmir_gold.jpg" into "Kashmir Gold".
// Casing follows Unicode word rules, so "o'neil" becomes "O'neil".
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return cases.Title(language.English).String(separators.Replace(base))
}

// CategoryFor returns the collection a stone belongs to.
func CategoryFor(title string) string {
	if c, ok := categoryByTitle[title]; ok {
		return c
	}
	return DefaultCategory
}

// DescriptionFor returns the marketing blurb for a stone.
func DescriptionFor(title string) string {
	if d, ok := descriptions[title]; ok {
		return d
	}
	return fmt.Sprintf("Premium %s granite from Arihant's exclusive collection.", title)
}
