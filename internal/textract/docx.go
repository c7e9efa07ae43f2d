package textract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/recruitkit/cvparse/internal/schema"
)

// DOCXExtractor handles .docx files.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Extract(r io.Reader, filename string) (schema.RawDocument, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "cvparse-docx-*.docx")
	if err != nil {
		return schema.RawDocument{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return schema.RawDocument{}, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return schema.RawDocument{}, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return schema.RawDocument{}, fmt.Errorf("parse docx: %w", err)
	}

	var buf strings.Builder
	var urls []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text != "" {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(text)
		}
		urls = append(urls, docxParagraphLinks(doc, para)...)
	}

	return schema.RawDocument{Text: buf.String(), URLs: urls}, nil
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			buf.WriteString(docxRunText(c))
		case *docx.Hyperlink:
			buf.WriteString(docxRunText(&c.Run))
		}
	}
	return strings.TrimSpace(buf.String())
}

func docxRunText(run *docx.Run) string {
	var buf strings.Builder
	for _, rc := range run.Children {
		if t, ok := rc.(*docx.Text); ok {
			buf.WriteString(t.Text)
		}
	}
	return buf.String()
}

// docxParagraphLinks resolves hyperlink relationship IDs to their targets.
// Anchor text like "LinkedIn" hides the profile URL in the relationship
// table, so the flat text alone would lose it.
func docxParagraphLinks(doc *docx.Docx, para *docx.Paragraph) []string {
	var urls []string
	for _, child := range para.Children {
		link, ok := child.(*docx.Hyperlink)
		if !ok || link.ID == "" {
			continue
		}
		target, err := doc.ReferTarget(link.ID)
		if err != nil || target == "" {
			continue
		}
		urls = append(urls, target)
	}
	return urls
}
