package textract

import (
	"bufio"
	"io"
	"strings"

	"github.com/recruitkit/cvparse/internal/schema"
)

// TextExtractor handles plain text files.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (schema.RawDocument, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var buf strings.Builder
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return schema.RawDocument{}, err
	}

	return schema.RawDocument{Text: buf.String()}, nil
}
