// Package inventory loads the fixed set of leaves a book is built from.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoLeaves is returned for an inventory without any leaves.
var ErrNoLeaves = errors.New("book has no leaves")

// Face is one side of a leaf.
type Face struct {
	Title string `yaml:"title" toml:"title"`
	Text  string `yaml:"text" toml:"text"`
}

// Blank reports whether the face has no content.
func (f Face) Blank() bool {
	return strings.TrimSpace(f.Title) == "" && strings.TrimSpace(f.Text) == ""
}

// Leaf is one sheet with a front and a back face.
type Leaf struct {
	Front Face `yaml:"front" toml:"front"`
	Back  Face `yaml:"back" toml:"back"`
}

// Book is the complete page inventory.
type Book struct {
	Title  string `yaml:"title" toml:"title"`
	Leaves []Leaf `yaml:"leaves" toml:"leaves"`
}

// PageCount returns the number of leaves.
func (b Book) PageCount() int {
	return len(b.Leaves)
}

// Spread returns the faces visible at position i: the back of leaf i-1 on the
// left and the front of leaf i on the right. Either side is nil when the book
// is closed on that side.
func (b Book) Spread(i int) (left, right *Face) {
	if i > 0 && i <= len(b.Leaves) {
		left = &b.Leaves[i-1].Back
	}
	if i >= 0 && i < len(b.Leaves) {
		right = &b.Leaves[i].Front
	}
	return left, right
}

// Load reads a book from a YAML or TOML manifest, or from a directory of text
// files. An empty path returns the demo book.
func Load(path string) (Book, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Demo(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return Book{}, fmt.Errorf("stat book: %w", err)
	}

	var book Book
	if info.IsDir() {
		book, err = loadDir(path)
	} else {
		book, err = loadManifest(path)
	}
	if err != nil {
		return Book{}, err
	}
	if book.PageCount() == 0 {
		return Book{}, fmt.Errorf("load %s: %w", path, ErrNoLeaves)
	}
	if strings.TrimSpace(book.Title) == "" {
		book.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return book, nil
}

func loadManifest(path string) (Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Book{}, fmt.Errorf("read manifest: %w", err)
	}

	var book Book
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &book); err != nil {
			return Book{}, fmt.Errorf("parse manifest: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &book); err != nil {
			return Book{}, fmt.Errorf("parse manifest: %w", err)
		}
	default:
		return Book{}, fmt.Errorf("unsupported manifest type %q", filepath.Ext(path))
	}
	return book, nil
}

// loadDir turns each .txt or .md file into a face, in name order, pairing
// consecutive faces into leaves.
func loadDir(dir string) (Book, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Book{}, fmt.Errorf("read book dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	faces := make([]Face, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return Book{}, fmt.Errorf("read page %s: %w", name, err)
		}
		faces = append(faces, Face{
			Title: strings.TrimSuffix(name, filepath.Ext(name)),
			Text:  strings.TrimSpace(string(data)),
		})
	}

	var book Book
	for i := 0; i < len(faces); i += 2 {
		leaf := Leaf{Front: faces[i]}
		if i+1 < len(faces) {
			leaf.Back = faces[i+1]
		}
		book.Leaves = append(book.Leaves, leaf)
	}
	return book, nil
}

// Demo returns the built-in four-leaf book.
func Demo() Book {
	return Book{
		Title: "Flipbook",
		Leaves: []Leaf{
			{
				Front: Face{Title: "Flipbook", Text: "Scroll, swipe or press → to open the book."},
				Back:  Face{Title: "Turning pages", Text: "Wheel down, swipe up, → or ↓ turn forward."},
			},
			{
				Front: Face{Title: "Going back", Text: "Wheel up, swipe down, ← or ↑ turn back."},
				Back:  Face{Title: "One at a time", Text: "Input during a page turn is ignored until it lands."},
			},
			{
				Front: Face{Title: "Gestures", Text: "Drag with the mouse like a finger; long swipes turn several pages."},
				Back:  Face{Title: "Themes", Text: "Press T to change colours and ? for help."},
			},
			{
				Front: Face{Title: "The end", Text: "One more turn closes the book."},
				Back:  Face{Title: "Back cover", Text: ""},
			},
		},
	}
}
