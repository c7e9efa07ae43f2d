package textract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/recruitkit/cvparse/internal/schema"
)

// ODTExtractor handles OpenDocument text files. An .odt is a zip archive
// whose content.xml carries the document body; we stream the XML tokens
// and flatten text:p / text:h elements into lines.
type ODTExtractor struct{}

func (e *ODTExtractor) Extract(r io.Reader, filename string) (schema.RawDocument, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return schema.RawDocument{}, fmt.Errorf("read odt: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return schema.RawDocument{}, fmt.Errorf("open odt archive: %w", err)
	}

	var content *zip.File
	for _, f := range zr.File {
		if f.Name == "content.xml" {
			content = f
			break
		}
	}
	if content == nil {
		return schema.RawDocument{}, fmt.Errorf("odt archive has no content.xml")
	}

	cf, err := content.Open()
	if err != nil {
		return schema.RawDocument{}, fmt.Errorf("open content.xml: %w", err)
	}
	defer cf.Close()

	return parseODTContent(cf)
}

func parseODTContent(r io.Reader) (schema.RawDocument, error) {
	dec := xml.NewDecoder(r)

	var buf strings.Builder
	var urls []string
	var line strings.Builder

	flush := func() {
		t := strings.TrimSpace(line.String())
		if t != "" {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(t)
		}
		line.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return schema.RawDocument{}, fmt.Errorf("parse content.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tab":
				line.WriteString("\t")
			case "line-break":
				flush()
			case "s":
				line.WriteString(" ")
			case "a":
				for _, a := range t.Attr {
					if a.Name.Local == "href" && strings.HasPrefix(a.Value, "http") {
						urls = append(urls, a.Value)
					}
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p", "h":
				flush()
			}
		case xml.CharData:
			line.Write(t)
		}
	}
	flush()

	return schema.RawDocument{Text: buf.String(), URLs: urls}, nil
}
