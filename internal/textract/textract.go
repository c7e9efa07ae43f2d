// Package textract converts uploaded documents into plain text for the
// parsing pipeline. Each extractor flattens its format into newline-separated
// paragraphs; hyperlink targets that would be lost in the flattening (docx
// and html anchors) are returned alongside the text.
package textract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/recruitkit/cvparse/internal/schema"
)

// ErrUnsupportedFormat marks a file extension no extractor handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extractor converts raw document bytes into plain text.
type Extractor interface {
	Extract(r io.Reader, filename string) (schema.RawDocument, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
	".odt":  true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".odt":
		return &ODTExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
