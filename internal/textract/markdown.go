package textract

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/recruitkit/cvparse/internal/schema"
)

// MarkdownExtractor handles Markdown files using goldmark.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (schema.RawDocument, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return schema.RawDocument{}, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var buf strings.Builder
	var urls []string

	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch node := c.(type) {
			case *ast.Heading:
				appendLine(&buf, string(node.Text(src)))
			case *ast.Link:
				if dest := string(node.Destination); strings.HasPrefix(dest, "http") {
					urls = append(urls, dest)
				}
				walk(c)
			default:
				if c.Type() == ast.TypeBlock {
					appendLine(&buf, blockText(c, src))
				}
				walk(c)
			}
		}
	}
	walk(doc)

	return schema.RawDocument{Text: buf.String(), URLs: urls}, nil
}

func appendLine(buf *strings.Builder, t string) {
	t = strings.TrimSpace(t)
	if t == "" {
		return
	}
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString(t)
}

// blockText gets the text content of a goldmark block node, one physical
// line per source line.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimSpace(buf.String())
}
